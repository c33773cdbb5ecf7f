package rest

import (
	"github.com/labstack/echo/v4"
)

const (
	apiV1Prefix = "/api/v1"

	newsPath   = apiV1Prefix + "/news"
	countPath  = apiV1Prefix + "/count"
	tablesPath = apiV1Prefix + "/tables"

	healthPath = "/health"
)

// RegisterRoutes builds the echo instance with all inspection routes.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET(newsPath, h.News)
	e.GET(countPath, h.Count)
	e.GET(tablesPath, h.Tables)
	e.GET(healthPath, h.Health)

	return e
}
