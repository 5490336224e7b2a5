package main

import (
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/app"
	"github.com/DvijDesai0102/CSC210-Project/internal/appconf"
	"github.com/DvijDesai0102/CSC210-Project/internal/restapi"
	"github.com/DvijDesai0102/CSC210-Project/internal/webui"
	"github.com/julienschmidt/httprouter"
)

// newHandler mounts the REST API, plus the debug pages outside production, behind the middleware chain.
func newHandler(application *app.Application) http.Handler {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	if application.Config.Env != appconf.Production {
		webUI := &webui.WebUI{Application: application}
		webUI.SetWebUIRoutes(router)
	}

	return api.WithMiddleware(router)
}
