package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-03-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())

	_, err = ParseDate("01/03/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateArticleRequest_Validate(t *testing.T) {
	valid := CreateArticleRequest{Title: "T", Description: "D"}
	assert.NoError(t, valid.Validate())

	withDate := CreateArticleRequest{Title: "T", Description: "D", PublicationDate: "2024-03-01"}
	assert.NoError(t, withDate.Validate())

	assert.Error(t, CreateArticleRequest{Description: "D"}.Validate())
	assert.Error(t, CreateArticleRequest{Title: "T"}.Validate())
	assert.Error(t, CreateArticleRequest{Title: "T", Description: "D", PublicationDate: "soon"}.Validate())
}

func TestPatchArticleRequest_Validate(t *testing.T) {
	// All fields absent is a valid no-op patch.
	assert.NoError(t, PatchArticleRequest{}.Validate())

	title := "Renamed"
	assert.NoError(t, PatchArticleRequest{Title: &title}.Validate())

	empty := ""
	assert.Error(t, PatchArticleRequest{Title: &empty}.Validate())

	bad := "not-a-date"
	assert.Error(t, PatchArticleRequest{PublicationDate: &bad}.Validate())
}

func TestListArticlesRequest_Validate(t *testing.T) {
	assert.NoError(t, ListArticlesRequest{Page: 1, Size: 10}.Validate())

	assert.Error(t, ListArticlesRequest{Page: 0, Size: 10}.Validate())
	assert.Error(t, ListArticlesRequest{Page: 1, Size: 0}.Validate())
	assert.Error(t, ListArticlesRequest{Page: -1, Size: -5}.Validate())

	badFilter := ListArticlesRequest{
		Page: 1, Size: 10,
		Filters: &ListFilters{StartDate: "yesterday"},
	}
	assert.Error(t, badFilter.Validate())

	badSort := ListArticlesRequest{
		Page: 1, Size: 10,
		Sorts: &ListSorts{Author: "ascending"},
	}
	assert.Error(t, badSort.Validate())

	full := ListArticlesRequest{
		Page: 2, Size: 25,
		Filters: &ListFilters{Author: "Iv", StartDate: "2024-01-01", EndDate: "2024-12-31", Search: "go"},
		Sorts:   &ListSorts{ArticleID: SortAsc, PublicationDate: SortDesc, Author: SortAsc},
	}
	assert.NoError(t, full.Validate())
}

func TestToArticleResponse(t *testing.T) {
	middle := "Ivanovich"
	a := ArticleWithAuthor{
		Article: Article{ID: 3, Title: "T", Description: "D", AuthorID: 7},
	}
	a.Author.ID = 7
	a.Author.FirstName = "Ivan"
	a.Author.MiddleName = &middle
	a.Author.LastName = "Petrov"

	got := ToArticleResponse(a)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, int64(7), got.Author.ID)
	assert.Equal(t, "Ivan Ivanovich Petrov", got.Author.FullName)
}
