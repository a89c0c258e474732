package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"article-api/internal/domains/article/model"
	"article-api/internal/domains/article/service"
	usermodel "article-api/internal/domains/user/model"
	"article-api/internal/shared/middleware"
	"article-api/internal/shared/response"
	"article-api/pkg/logger"
)

type ArticleHandler struct {
	service service.ServiceInterface
}

func NewArticleHandler(service service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create handles POST /api/v1/article
func (h *ArticleHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	article, err := h.service.CreateArticle(c.Request.Context(), req, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.ToArticleResponse(*article))
}

// Patch handles PATCH /api/v1/article/:id
func (h *ArticleHandler) Patch(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req model.PatchArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	article, err := h.service.PatchArticle(c.Request.Context(), id, req, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToArticleResponse(*article))
}

// Delete handles DELETE /api/v1/article/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.service.DeleteArticleByID(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// GetByID handles GET /api/v1/article/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	article, err := h.service.GetArticleByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToArticleResponse(*article))
}

// List handles GET /api/v1/article. Pagination comes from plain query
// params; filters and sorts arrive as JSON objects in the query string
// so field presence survives the round trip into the cache fingerprint.
func (h *ArticleHandler) List(c *gin.Context) {
	req := model.ListArticlesRequest{Page: 1, Size: 10}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "page must be an integer")
			return
		}
		req.Page = page
	}
	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "size must be an integer")
			return
		}
		req.Size = size
	}

	if raw := c.Query("filters"); raw != "" {
		var filters model.ListFilters
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			response.BadRequest(c, "filters must be a JSON object")
			return
		}
		req.Filters = &filters
	}
	if raw := c.Query("sorts"); raw != "" {
		var sorts model.ListSorts
		if err := json.Unmarshal([]byte(raw), &sorts); err != nil {
			response.BadRequest(c, "sorts must be a JSON object")
			return
		}
		req.Sorts = &sorts
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	list, err := h.service.GetArticlesByFilters(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToArticleListResponse(*list))
}

func (h *ArticleHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, usermodel.ErrUserNotFound) {
		response.NotFound(c, usermodel.ErrUserNotFound.Error())
		return
	}

	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("article request failed", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
