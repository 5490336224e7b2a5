package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Lines []BusLine `json:"lines"`
	Stops []BusStop `json:"stops"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Lines: []BusLine{},
		Stops: []BusStop{},
	}
}
