package app

import (
	"net/http/httptest"
	"testing"

	"github.com/DvijDesai0102/CSC210-Project/internal/appconf"
	"github.com/stretchr/testify/assert"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"TEST", "org.example"},
		},
	}

	tests := []struct {
		url     string
		invalid bool
	}{
		{"/api/where/bus-stops.json?key=TEST", false},
		{"/api/where/bus-stops.json?key=org.example", false},
		{"/api/where/bus-stops.json?key=test", true},
		{"/api/where/bus-stops.json", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.invalid, app.RequestHasInvalidAPIKey(req))
		})
	}
}
