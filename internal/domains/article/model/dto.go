package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SortOrder is a sort direction supplied by the client.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a client-supplied date as a calendar timestamp.
// Accepts RFC3339 or a plain date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ========================================
// WRITE DTOs
// ========================================

type CreateArticleRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	PublicationDate string `json:"publicationDate,omitempty"` // defaults to now when absent
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&r.PublicationDate, validation.By(dateStringRule)),
	)
}

type PatchArticleRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	PublicationDate *string `json:"publicationDate,omitempty"`
}

func (r PatchArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.PublicationDate, validation.By(dateStringRule)),
	)
}

// ========================================
// LIST DTOs
// ========================================

// ListFilters holds the optional article list filters. An empty string
// means the field is absent and contributes no predicate clause.
type ListFilters struct {
	Author    string `json:"author,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Search    string `json:"search,omitempty"`
}

func (f ListFilters) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.StartDate, validation.By(dateStringRule)),
		validation.Field(&f.EndDate, validation.By(dateStringRule)),
	)
}

// ListSorts holds the optional sort directions per sortable field.
type ListSorts struct {
	ArticleID       SortOrder `json:"articleId,omitempty"`
	PublicationDate SortOrder `json:"publicationDate,omitempty"`
	Author          SortOrder `json:"author,omitempty"`
}

func (s ListSorts) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ArticleID, validation.By(sortOrderRule)),
		validation.Field(&s.PublicationDate, validation.By(sortOrderRule)),
		validation.Field(&s.Author, validation.By(sortOrderRule)),
	)
}

// ListArticlesRequest is the full list query as received. Field order
// matters: the cache fingerprint is derived from its JSON encoding, and
// encoding/json emits struct fields in declaration order.
type ListArticlesRequest struct {
	Page    int          `json:"page"`
	Size    int          `json:"size"`
	Filters *ListFilters `json:"filters,omitempty"`
	Sorts   *ListSorts   `json:"sorts,omitempty"`
}

func (r ListArticlesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Min(1).Error("page must be >= 1")),
		validation.Field(&r.Size, validation.Min(1).Error("size must be >= 1")),
		validation.Field(&r.Filters),
		validation.Field(&r.Sorts),
	)
}

func dateStringRule(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	}
	if s == "" {
		return nil
	}
	_, err := ParseDate(s)
	return err
}

func sortOrderRule(value interface{}) error {
	o, _ := value.(SortOrder)
	if o == "" || o.IsValid() {
		return nil
	}
	return ErrInvalidSort
}

// ========================================
// RESPONSE DTOs
// ========================================

// AuthorResponse is the author projection exposed to clients.
type AuthorResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type ArticleResponse struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	PublicationDate time.Time      `json:"publicationDate"`
	Author          AuthorResponse `json:"author"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int64             `json:"total"`
}

// ToArticleResponse maps the denormalized projection to the API shape.
// The author relation must be resolved or the full name comes out empty.
func ToArticleResponse(a ArticleWithAuthor) ArticleResponse {
	return ArticleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		PublicationDate: a.PublicationDate,
		Author: AuthorResponse{
			ID:       a.Author.ID,
			FullName: a.Author.FullName(),
		},
	}
}

func ToArticleListResponse(list ArticleList) ArticleListResponse {
	articles := make([]ArticleResponse, len(list.Articles))
	for i, a := range list.Articles {
		articles[i] = ToArticleResponse(a)
	}
	return ArticleListResponse{
		Articles: articles,
		Total:    list.Total,
	}
}
