package restapi

import (
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/models"
)

func (api *RestAPI) busStopsHandler(w http.ResponseWriter, r *http.Request) {
	g := api.Graph()

	stops := g.Stops()
	list := make([]models.BusStop, 0, len(stops))
	for _, stop := range stops {
		list = append(list, busStopModel(g, stop))
	}

	references := models.NewEmptyReferences()
	for _, line := range g.Lines() {
		references.Lines = append(references.Lines, busLineModel(line))
	}

	api.sendResponse(w, r, models.NewListResponse(list, references))
}
