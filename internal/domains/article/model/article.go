package model

import (
	"time"

	usermodel "article-api/internal/domains/user/model"
)

// Article is the domain entity, mapped 1:1 to the articles table.
// AuthorID is immutable after creation; UpdatedAt is maintained by the
// store on every mutation.
type Article struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PublicationDate time.Time `json:"publicationDate"`
	AuthorID        int64     `json:"authorId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleWithAuthor is the denormalized projection served from cache
// and list queries: the article row with its author relation resolved.
type ArticleWithAuthor struct {
	Article
	Author usermodel.User `json:"author"`
}

// ArticleList is the paginated projection cached under a list fingerprint.
type ArticleList struct {
	Articles []ArticleWithAuthor `json:"articles"`
	Total    int64               `json:"total"`
}
