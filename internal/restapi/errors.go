package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/logging"
	"github.com/DvijDesai0102/CSC210-Project/internal/models"
	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/DvijDesai0102/CSC210-Project/internal/utils"
)

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required format
// for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	response := struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}{
		Code:        http.StatusUnauthorized,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "permission denied",
		Version:     1, // version 1, unlike successful responses
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode invalid API key response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err)

	response := struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// serviceUnavailableResponse reports a route search that ran out of time.
func (api *RestAPI) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "route search abandoned", err)

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusServiceUnavailable)
	response := models.NewResponse(http.StatusServiceUnavailable, nil, "route search timed out")
	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		api.Logger.Error("failed to encode service unavailable response", "error", encodeErr)
	}
}

// queryErrorResponse maps a planner or train error onto a response:
// bad input is a 400, a stop no line serves is a 404, a search cut short by its
// deadline or a cancelled request is a 503 and anything else a 500.
func (api *RestAPI) queryErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var rangeErr *utils.RangeError
	switch {
	case errors.As(err, &rangeErr):
		api.validationErrorResponse(w, r, map[string][]string{rangeErr.Field: {rangeErr.Error()}})
	case errors.Is(err, utils.ErrInputFormat):
		api.validationErrorResponse(w, r, map[string][]string{"query": {err.Error()}})
	case errors.Is(err, network.ErrUnknownStop):
		api.sendNotFound(w, r)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		api.serviceUnavailableResponse(w, r, err)
	default:
		api.serverErrorResponse(w, r, err)
	}
}
