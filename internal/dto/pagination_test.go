package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalize_Defaults(t *testing.T) {
	var page Page
	page.Normalize()
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 10, page.PageSize)
}

func TestPageNormalize_KeepsValidValues(t *testing.T) {
	page := Page{CurrentPage: 3, PageSize: 25}
	page.Normalize()
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 25, page.PageSize)
}

func TestPageSortClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", Page{OrderBy: "desc"}.SortClause())
	assert.Equal(t, "created_at DESC", Page{OrderBy: "DESC"}.SortClause())
	assert.Equal(t, "created_at ASC", Page{OrderBy: ""}.SortClause())
	assert.Equal(t, "created_at ASC", Page{OrderBy: "asc"}.SortClause())
	assert.Equal(t, "created_at ASC", Page{OrderBy: "newest"}.SortClause())
}

func TestNewPaginated_TotalPagesRoundsUp(t *testing.T) {
	env := NewPaginated(Page{CurrentPage: 1, PageSize: 10}, 21, []string{"a"})
	assert.Equal(t, 3, env.TotalPages)
	assert.Equal(t, 21, env.TotalRecords)
}

func TestNewPaginated_EmptyPageIsNeverNil(t *testing.T) {
	env := NewPaginated[string](Page{CurrentPage: 5, PageSize: 10}, 0, nil)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data)
	assert.Equal(t, 0, env.TotalPages)
	assert.Equal(t, 5, env.CurrentPage)
}
