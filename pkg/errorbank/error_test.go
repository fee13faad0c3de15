package errorbank

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad").StatusCode())
	assert.Equal(t, http.StatusConflict, Conflict("dup").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("gone").StatusCode())
	assert.Equal(t, http.StatusFailedDependency, FailedDependency("no rows").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal("boom").StatusCode())
}

func TestGRPCCodes(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, BadRequest("bad").GRPCCode())
	assert.Equal(t, codes.AlreadyExists, Conflict("dup").GRPCCode())
	assert.Equal(t, codes.NotFound, NotFound("gone").GRPCCode())
	assert.Equal(t, codes.FailedPrecondition, FailedDependency("no rows").GRPCCode())
	assert.Equal(t, codes.Internal, Internal("boom").GRPCCode())
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to load customer", WithCause(cause))

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "failed to load customer", err.Message())
}

func TestFrom_PassesAppErrorsThrough(t *testing.T) {
	original := NotFound("Customer not found")
	got := From(original)
	assert.Same(t, original, got)
}

func TestFrom_WrapsUnknownErrors(t *testing.T) {
	got := From(errors.New("disk full"))
	require.NotNil(t, got)
	assert.Equal(t, KindInternal, got.Kind())
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode())
}

func TestFrom_Nil(t *testing.T) {
	assert.Nil(t, From(nil))
}

func TestWithDetail(t *testing.T) {
	err := BadRequest("invalid payload", WithDetail("field", "email"))
	assert.Equal(t, "email", err.Details()["field"])
}
