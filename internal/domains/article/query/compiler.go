// Package query turns a client-supplied list request into a canonical
// store query (conditions, orderings, pagination) and a canonical,
// collision-resistant cache fingerprint.
package query

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"article-api/internal/domains/article/model"
)

// CachePrefix namespaces every article cache key.
const CachePrefix = "article"

// Column names used by the compiled query. The list query always joins
// users as "u" so author clauses can reference the first name.
const (
	colID              = "a.id"
	colTitle           = "a.title"
	colPublicationDate = "a.publication_date"
	colAuthorFirstName = "u.first_name"
)

// Conditions appends one conjunctive clause per present filter field.
// Absent fields contribute nothing; author and search are case-sensitive
// substring matches; date bounds are inclusive.
func Conditions(sb *sqlbuilder.SelectBuilder, filters *model.ListFilters) ([]string, error) {
	if filters == nil {
		return nil, nil
	}

	var conds []string

	if filters.Author != "" {
		conds = append(conds, sb.Like(colAuthorFirstName, "%"+filters.Author+"%"))
	}

	if filters.StartDate != "" {
		start, err := model.ParseDate(filters.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing startDate: %w", err)
		}
		conds = append(conds, sb.GreaterEqualThan(colPublicationDate, start))
	}

	if filters.EndDate != "" {
		end, err := model.ParseDate(filters.EndDate)
		if err != nil {
			return nil, fmt.Errorf("parsing endDate: %w", err)
		}
		conds = append(conds, sb.LessEqualThan(colPublicationDate, end))
	}

	if filters.Search != "" {
		conds = append(conds, sb.Like(colTitle, "%"+filters.Search+"%"))
	}

	return conds, nil
}

// Orderings emits one ORDER BY term per present sort key, in fixed
// server-side priority: articleId, publicationDate, author. Requests do
// not control priority between simultaneously supplied keys. With no
// sort keys the default is publication date, newest first.
func Orderings(sorts *model.ListSorts) []string {
	var orderings []string

	if sorts != nil {
		if sorts.ArticleID != "" {
			orderings = append(orderings, colID+" "+direction(sorts.ArticleID))
		}
		if sorts.PublicationDate != "" {
			orderings = append(orderings, colPublicationDate+" "+direction(sorts.PublicationDate))
		}
		if sorts.Author != "" {
			orderings = append(orderings, colAuthorFirstName+" "+direction(sorts.Author))
		}
	}

	if len(orderings) == 0 {
		orderings = []string{colPublicationDate + " DESC"}
	}

	return orderings
}

func direction(o model.SortOrder) string {
	if o == model.SortDesc {
		return "DESC"
	}
	return "ASC"
}

// LimitOffset converts 1-based pagination to limit/offset. Page and size
// are validated >= 1 by the caller.
func LimitOffset(page, size int) (limit, offset int) {
	return size, (page - 1) * size
}

// Fingerprint derives the cache key for a list request from its exact
// shape: field presence matters, so a request with an absent filters
// object keys differently from one carrying an empty object. The JSON
// encoding is stable (struct fields marshal in declaration order), which
// makes logically identical requests hit the same key.
func Fingerprint(req model.ListArticlesRequest) string {
	// Marshaling a struct of ints, strings and pointers cannot fail.
	data, _ := json.Marshal(req)

	return CachePrefix + ":" + base64.StdEncoding.EncodeToString(data)
}

// ArticleKey addresses the single-item cache entry for an article id.
func ArticleKey(id int64) string {
	return fmt.Sprintf("%s:%d", CachePrefix, id)
}
