package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/models"
	"github.com/DvijDesai0102/CSC210-Project/internal/routing"
	"github.com/DvijDesai0102/CSC210-Project/internal/utils"
	"github.com/patrickmn/go-cache"
)

func (api *RestAPI) busRoutesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	g := api.Graph()

	from, to, fieldErrors := utils.ParseStopPair(
		utils.SanitizeInput(query.Get("from")),
		utils.SanitizeInput(query.Get("to")),
		1, int(g.MaxStop()))
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	plan, err := api.plan(r, from, to)
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(busRoutesEntry(g, plan), planReferences(g, plan))
	if !plan.Found() {
		response.Text = routing.ErrNoRoute.Error()
	}
	api.sendResponse(w, r, response)
}

// plan answers from the plan cache when it is enabled, otherwise searches within
// Config.RouteTimeout. Only successful plans are cached.
func (api *RestAPI) plan(r *http.Request, from, to int) (routing.Plan, error) {
	key := fmt.Sprintf("%d:%d", from, to)
	if api.planCache != nil {
		if cached, ok := api.planCache.Get(key); ok {
			return cached.(routing.Plan), nil
		}
	}

	ctx := r.Context()
	if timeout := api.Config.RouteTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	plan, err := api.Planner.Plan(ctx, from, to)
	if err != nil {
		return routing.Plan{}, err
	}
	if api.planCache != nil {
		api.planCache.Set(key, plan, cache.DefaultExpiration)
	}
	return plan, nil
}
