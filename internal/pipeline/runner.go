// Package pipeline orchestrates video discovery, per-video idempotency
// checks, frame extraction, and batch summary reporting.
package pipeline

import (
	"context"
	"errors"

	"github.com/pitchlab/pitchframes/internal/config"
	"github.com/pitchlab/pitchframes/internal/extractor"
	"github.com/pitchlab/pitchframes/internal/logging"
	"github.com/pitchlab/pitchframes/pkg/models"
)

// FrameExtractor is the minimal extraction interface the runner needs
type FrameExtractor interface {
	ExtractFrames(ctx context.Context, inputPath, outputDir string) (int, error)
}

// Runner drives the sequential batch loop over discovered videos
type Runner struct {
	cfg       *config.Config
	extractor FrameExtractor
	log       *logging.Logger
}

// NewRunner creates a new batch runner
func NewRunner(cfg *config.Config, ext FrameExtractor, log *logging.Logger) *Runner {
	return &Runner{cfg: cfg, extractor: ext, log: log}
}

// Run processes every video in videosDir in order. A missing directory or
// an empty listing ends the run cleanly with guidance. Per-video failures
// are counted, never escalated: the loop always continues with the next
// video. Returns the aggregate summary after printing it.
func (r *Runner) Run(ctx context.Context, videosDir string) RunSummary {
	videos, err := Discover(videosDir)
	if err != nil {
		if errors.Is(err, ErrVideosDirNotFound) {
			r.log.Warnf("Videos directory not found: %s", videosDir)
			r.log.Warn("Please create the directory and add your video files")
		} else {
			r.log.ErrorWithErr("Video discovery failed", err)
		}
		return RunSummary{}
	}

	if len(videos) == 0 {
		r.log.Warnf("No mp4 video files found in: %s", videosDir)
		return RunSummary{}
	}

	summary := RunSummary{Total: len(videos)}
	r.log.Infof("Found %d video(s) to process", summary.Total)

	for i, video := range videos {
		if ctx.Err() != nil {
			r.log.Warn("Interrupted")
			break
		}

		result := r.processVideo(ctx, videosDir, video, i+1, summary.Total)
		switch result.Outcome {
		case models.OutcomeProcessed:
			summary.Processed++
		case models.OutcomeSkipped:
			summary.Skipped++
		case models.OutcomeFailed:
			summary.Failed++
		}
	}

	r.logSummary(summary)
	return summary
}

// processVideo handles one video through its terminal state: skipped,
// succeeded, or failed.
func (r *Runner) processVideo(ctx context.Context, videosDir string, video models.Video, index, total int) models.ExtractionResult {
	log := r.log.WithVideo(video.Filename())
	log.Infof("[%d/%d] Processing: %s", index, total, video.Filename())

	ws := NewWorkspace(videosDir, video)

	processed, existingFrames, err := ws.Processed()
	if err != nil {
		log.ErrorWithErr("Cannot inspect workspace", err)
		return models.Failed(err.Error())
	}
	if processed && !r.cfg.Videos.Force {
		log.Infof("Skipping (already processed: %d frames)", existingFrames)
		return models.Skipped(existingFrames)
	}

	if err := ws.Scaffold(); err != nil {
		log.ErrorWithErr("Cannot create workspace directories", err)
		return models.Failed(err.Error())
	}
	log.Debugf("Created: %s", ws.AllFramesDir())
	log.Debugf("Created: %s", ws.ReleaseFramesDir())

	log.Info("Extracting frames...")
	frameCount, err := r.extractor.ExtractFrames(ctx, video.Path, ws.AllFramesDir())
	if err != nil {
		// A timeout is reported distinctly from a plain ffmpeg failure.
		if errors.Is(err, extractor.ErrTimeout) {
			log.ErrorWithErr("Frame extraction timed out", err)
		} else {
			log.ErrorWithErr("Failed to extract frames", err)
		}
		return models.Failed(err.Error())
	}

	log.Infof("Extracted %d frames", frameCount)
	return models.Succeeded(frameCount)
}

// logSummary prints the aggregate counters in a fixed format
func (r *Runner) logSummary(s RunSummary) {
	r.log.Info("==================================================")
	r.log.Info("SUMMARY")
	r.log.Infof("Processed: %d", s.Processed)
	r.log.Infof("Skipped:   %d", s.Skipped)
	r.log.Infof("Failed:    %d", s.Failed)
	r.log.Infof("Total:     %d", s.Total)
	r.log.Info("==================================================")
}
