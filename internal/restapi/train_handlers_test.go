package restapi

import (
	"net/http"
	"testing"

	"github.com/DvijDesai0102/CSC210-Project/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTrainLineHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/train-line.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var line models.TrainLine
	entryOf(t, model, &line)
	assert.Equal(t, 8, line.StationCount)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, line.Forward)
	assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1}, line.Backward)
}

func TestTrainQuoteHandler(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		query    string
		expected models.TrainQuote
	}{
		{"from=2&to=7", models.TrainQuote{From: 2, To: 7, Direction: "forward", Stops: 5, TimeMinutes: 20, Fare: 20, ETAMinutes: 9}},
		{"from=1&to=1", models.TrainQuote{From: 1, To: 1, Direction: "none", Stops: 0, TimeMinutes: 0, Fare: 15, ETAMinutes: 9}},
		{"from=8&to=1", models.TrainQuote{From: 8, To: 1, Direction: "backward", Stops: 7, TimeMinutes: 28, Fare: 25, ETAMinutes: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/where/train-quote.json?key=TEST&"+tt.query)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var quote models.TrainQuote
			entryOf(t, model, &quote)
			assert.Equal(t, tt.expected, quote)
		})
	}
}

func TestTrainQuoteHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		query    string
		field    string
		expected string
	}{
		{"from=0&to=5", "from", "from must be between 1 and 8, got 0"},
		{"from=1&to=9", "to", "to must be between 1 and 8, got 9"},
		{"from=two&to=5", "from", `Invalid field value for field "from".`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, body := serveApiAndRetrieveBody(t, api, "/api/where/train-quote.json?key=TEST&"+tt.query)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, []string{tt.expected}, fieldErrorsOf(t, body)[tt.field])
		})
	}
}
