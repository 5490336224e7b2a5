package restapi

import (
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/models"
	"github.com/DvijDesai0102/CSC210-Project/internal/train"
	"github.com/DvijDesai0102/CSC210-Project/internal/utils"
)

func (api *RestAPI) trainLineHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(trainLineModel(api.TrainLine), models.NewEmptyReferences()))
}

func (api *RestAPI) trainQuoteHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, to, fieldErrors := utils.ParseStopPair(
		utils.SanitizeInput(query.Get("from")),
		utils.SanitizeInput(query.Get("to")),
		1, api.TrainLine.StationCount())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	quote, err := api.TrainLine.Quote(train.StationID(from), train.StationID(to))
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(trainQuoteModel(quote), models.NewEmptyReferences()))
}
