package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/DvijDesai0102/CSC210-Project/internal/network"
	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func (webUI *WebUI) dataTypes() []string {
	types := []string{"lines", "stops", "edges", "train"}
	if webUI.GtfsManager != nil {
		types = append(types, "gtfs_feed", "gtfs_routes", "gtfs_warnings")
	}
	return types
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")

	err := debugTemplate.Execute(w, debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: webUI.dataTypes(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// stopEdges is the adjacency of one stop, in edge insertion order.
type stopEdges struct {
	Stop  network.StopID
	Edges []network.Edge
}

// gtfsFeedSummary maps every GTFS stop that a line serves to the stop number used by the planner.
func (webUI *WebUI) gtfsFeedSummary() map[string]interface{} {
	manager := webUI.GtfsManager
	stopNumbers := make(map[string]int)
	for _, stop := range manager.GetStaticData().Stops {
		if number, ok := manager.StopNumber(stop.Id); ok {
			stopNumbers[stop.Id] = number
		}
	}
	return map[string]interface{}{
		"source":      manager.Source(),
		"lastUpdated": manager.LastUpdated(),
		"stopNumbers": stopNumbers,
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")
	g := webUI.Graph()

	var data interface{}
	var title string

	switch dataType {
	case "lines":
		data = g.Lines()
		title = "Bus Network - Lines"
	case "stops":
		stops := make(map[network.StopID]network.StopInfo)
		for _, stop := range g.Stops() {
			info, _ := g.Info(stop)
			stops[stop] = info
		}
		data = stops
		title = "Bus Network - Stops"
	case "edges":
		var edges []stopEdges
		for _, stop := range g.Stops() {
			edges = append(edges, stopEdges{Stop: stop, Edges: g.Edges(stop)})
		}
		data = edges
		title = "Bus Network - Edges"
	case "train":
		data = map[string]interface{}{
			"forward":  webUI.TrainLine.Forward(),
			"backward": webUI.TrainLine.Backward(),
		}
		title = "Train Line"
	case "gtfs_feed":
		if webUI.GtfsManager != nil {
			data = webUI.gtfsFeedSummary()
			title = "GTFS Static - Feed"
			break
		}
		fallthrough
	case "gtfs_routes":
		if webUI.GtfsManager != nil {
			data = webUI.GtfsManager.GetStaticData().Routes
			title = "GTFS Static - Routes"
			break
		}
		fallthrough
	case "gtfs_warnings":
		if webUI.GtfsManager != nil {
			data = webUI.GtfsManager.GetStaticData().Warnings
			title = "GTFS Static - Parse Warnings"
			break
		}
		fallthrough
	default:
		data = map[string]string{
			"error": "Please use one of the listed data types.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, title, data)
}
