package restapi

import (
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/models"
)

func (api *RestAPI) busLinesHandler(w http.ResponseWriter, r *http.Request) {
	lines := api.Graph().Lines()
	list := make([]models.BusLine, 0, len(lines))
	for _, line := range lines {
		list = append(list, busLineModel(line))
	}

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences()))
}
