package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storefront/pkg/errorbank"
)

func newContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBuild_SuccessEnvelope(t *testing.T) {
	c, rec := newContext(t)

	err := New(c).WithMessage("Retrieved successfully").WithData(map[string]string{"id": "c1"}).Build()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(http.StatusOK), envelope["code"])
	assert.Equal(t, "Retrieved successfully", envelope["message"])
	assert.Equal(t, map[string]any{"id": "c1"}, envelope["data"])
}

func TestBuild_DataAlwaysPresent(t *testing.T) {
	c, rec := newContext(t)

	err := New(c).WithMessage("ok").Build()
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	_, ok := envelope["data"]
	assert.True(t, ok)
}

func TestBuild_ErrorEnvelope(t *testing.T) {
	c, rec := newContext(t)

	err := New(c).WithError(errorbank.NotFound("Customer not found")).Build()
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(http.StatusNotFound), envelope["code"])
	assert.Equal(t, "Customer not found", envelope["message"])
}

func TestBuild_UnknownErrorHiddenBehindInternal(t *testing.T) {
	c, rec := newContext(t)

	err := New(c).WithError(assert.AnError).Build()
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "internal error", envelope["message"])
}

func TestDeleted_NoContent(t *testing.T) {
	c, rec := newContext(t)

	err := New(c).Deleted()
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestBuild_CreatedStatus(t *testing.T) {
	c, rec := newContext(t)

	err := New(c).WithStatus(http.StatusCreated).WithMessage("Created successfully").WithData("x").Build()
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(http.StatusCreated), envelope["code"])
}
