// Package rest exposes a read-only inspection API over the news store.
// It lists tables and previews persisted rows; it never writes.
package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-collector/internal/db"
)

const defaultPreviewLimit = 10

type NewsRequest struct {
	Limit *int `query:"limit"`
}

// Repo is the subset of the store repository the inspection API reads.
type Repo interface {
	News(ctx context.Context, limit int) ([]db.News, error)
	NewsCount(ctx context.Context) (int, error)
	Tables(ctx context.Context) ([]string, error)
}

type Handler struct {
	repo Repo
	log  *slog.Logger
}

func NewHandler(repo Repo, log *slog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// News handles GET /api/v1/news: a preview of the most recently published
// rows, newest first.
func (h *Handler) News(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	limit := defaultPreviewLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	news, err := h.repo.News(c.Request().Context(), limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNewsList(news))
}

// Count handles GET /api/v1/count: the total number of persisted rows.
func (h *Handler) Count(c echo.Context) error {
	count, err := h.repo.NewsCount(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, count)
}

// Tables handles GET /api/v1/tables: the tables in the public schema.
func (h *Handler) Tables(c echo.Context) error {
	tables, err := h.repo.Tables(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, tables)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
