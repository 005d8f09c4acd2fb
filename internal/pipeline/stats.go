package pipeline

// RunSummary tracks aggregate counters across one batch run. The counters
// are owned exclusively by the runner's sequential loop.
type RunSummary struct {
	Total     int
	Processed int
	Skipped   int
	Failed    int
}

// Attempted returns how many videos were actually handed to the extractor
func (s RunSummary) Attempted() int {
	return s.Processed + s.Failed
}
