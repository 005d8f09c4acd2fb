package models

// Extraction outcome constants
const (
	OutcomeProcessed = "processed"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"
)

// ExtractionResult holds the outcome of processing a single video. It only
// lives for the duration of that video's turn in the batch loop; the runner
// folds it into the run summary.
type ExtractionResult struct {
	Outcome    string `json:"outcome"`
	FrameCount int    `json:"frame_count"`
	ErrorMsg   string `json:"error_msg,omitempty"`
}

// Succeeded builds a result for a successful extraction with the number of
// frames recounted from disk
func Succeeded(frameCount int) ExtractionResult {
	return ExtractionResult{Outcome: OutcomeProcessed, FrameCount: frameCount}
}

// Skipped builds a result for a video whose frames already exist
func Skipped(existingFrames int) ExtractionResult {
	return ExtractionResult{Outcome: OutcomeSkipped, FrameCount: existingFrames}
}

// Failed builds a result for a failed extraction
func Failed(errMsg string) ExtractionResult {
	return ExtractionResult{Outcome: OutcomeFailed, ErrorMsg: errMsg}
}
