package network

// DefaultDistanceKm is used for a stop pair missing from the known distance table.
const DefaultDistanceKm = 1.0

// MaxSampleStop is the highest stop identifier of the built-in network.
const MaxSampleStop = 15

// SampleLines returns the five lines of the built-in 15 stop network.
func SampleLines() []LineDefinition {
	return []LineDefinition{
		{ID: 1, Name: "Bus 1", Stops: []StopID{1, 2, 3, 4, 5}},
		{ID: 2, Name: "Bus 2", Stops: []StopID{3, 6, 7, 8, 9}},
		{ID: 3, Name: "Bus 3", Stops: []StopID{5, 9, 10, 11, 12}},
		{ID: 4, Name: "Bus 4", Stops: []StopID{2, 6, 10, 13, 14}},
		{ID: 5, Name: "Bus 5", Stops: []StopID{4, 8, 12, 13, 15}},
	}
}

// SampleDistances returns the surveyed distances of the built-in network.
// Several entries describe pairs no line connects directly; they are kept as surveyed.
func SampleDistances() DistanceTable {
	return DistanceTable{
		{1, 2}: 2.0, {1, 3}: 1.5, {1, 4}: 2.2,
		{2, 3}: 0.5, {2, 5}: 1.7, {2, 6}: 1.3,
		{3, 7}: 2.0, {3, 8}: 1.1, {6, 7}: 0.4,
		{7, 8}: 1.0, {4, 9}: 2.4, {4, 10}: 1.8,
		{8, 9}: 0.6, {9, 10}: 0.7, {5, 15}: 2.1,
		{5, 11}: 1.2, {15, 11}: 0.8, {6, 11}: 0.2,
		{7, 12}: 1.5, {8, 13}: 2.9, {11, 12}: 1.7,
		{12, 13}: 0.7, {10, 13}: 2.3, {10, 14}: 2.0,
		{13, 14}: 1.0,
	}
}

// Sample builds the built-in network.
func Sample() *Graph {
	g, err := Build(SampleLines(), SampleDistances(), DefaultDistanceKm)
	if err != nil {
		// the fixed data is valid
		panic(err)
	}
	return g
}
