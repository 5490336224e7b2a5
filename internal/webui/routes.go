package webui

import (
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/app"
	"github.com/julienschmidt/httprouter"
)

// WebUI serves the debug pages. They need no API key and are only mounted outside production.
type WebUI struct {
	*app.Application
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
