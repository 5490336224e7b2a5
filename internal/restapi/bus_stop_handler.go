package restapi

import (
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/models"
	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/DvijDesai0102/CSC210-Project/internal/utils"
)

func (api *RestAPI) busStopHandler(w http.ResponseWriter, r *http.Request) {
	queryParamID := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(queryParamID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	id, err := utils.ParseStopID("id", queryParamID)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {"Invalid field value for field \"id\"."}})
		return
	}

	g := api.Graph()
	if err := utils.ValidateRange("id", id, 1, int(g.MaxStop())); err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	stop := network.StopID(id)
	if !g.HasStop(stop) {
		api.sendNotFound(w, r)
		return
	}

	references := models.NewEmptyReferences()
	served := make(map[network.LineID]bool)
	for _, line := range g.LinesAt(stop) {
		served[line] = true
	}
	for _, line := range g.Lines() {
		if served[line.ID] {
			references.Lines = append(references.Lines, busLineModel(line))
		}
	}

	api.sendResponse(w, r, models.NewEntryResponse(busStopModel(g, stop), references))
}
