// Package extractor wraps the external ffmpeg binary for full-video frame
// extraction. Invocations are bounded by a wall-clock timeout and the frame
// count is always recounted from disk.
package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pitchlab/pitchframes/internal/config"
)

// FramePattern is the ffmpeg output pattern for extracted frames.
// FrameGlob matches the files that pattern produces; the idempotency
// check and the post-extraction recount both rely on it.
const (
	FramePattern = "frame_%04d.jpg"
	FrameGlob    = "frame_*.jpg"
)

// Sentinel errors for classifying extraction failures.
var (
	// ErrFFmpegNotFound means the ffmpeg binary is not on PATH.
	ErrFFmpegNotFound = errors.New("ffmpeg not found")

	// ErrTimeout means an extraction exceeded the configured wall-clock
	// limit; the input is likely corrupt or oversized.
	ErrTimeout = errors.New("ffmpeg timed out")
)

// stderrTailLines limits how much ffmpeg diagnostic output is surfaced.
const stderrTailLines = 20

// FFmpeg wraps ffmpeg frame-extraction operations
type FFmpeg struct {
	ffmpegPath string
	timeout    time.Duration
	quality    int
}

// New creates a new FFmpeg instance from extractor configuration
func New(cfg config.ExtractorConfig) *FFmpeg {
	return &FFmpeg{
		ffmpegPath: cfg.FFmpegPath,
		timeout:    cfg.Timeout,
		quality:    cfg.Quality,
	}
}

// Version verifies that ffmpeg is available and returns its version string
// (e.g. "6.1.1"). Returns ErrFFmpegNotFound when the binary is missing so
// the caller can print remediation and halt before any processing.
func (f *FFmpeg) Version(ctx context.Context) (string, error) {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, "-version")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: -version failed: %v", ErrFFmpegNotFound, err)
	}

	// First line looks like "ffmpeg version 6.1.1 Copyright ...".
	fields := strings.Fields(strings.SplitN(stdout.String(), "\n", 2)[0])
	if len(fields) >= 3 {
		return fields[2], nil
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ExtractFrames decodes every frame of inputPath into outputDir as
// sequentially numbered JPEGs. The invocation is bounded by the configured
// timeout. On success the returned count is recounted from disk rather than
// taken from ffmpeg, since its own reporting is unreliable for malformed
// inputs. Partial frames from a timed-out run are removed so a later
// idempotency check cannot mistake them for a completed extraction.
func (f *FFmpeg) ExtractFrames(ctx context.Context, inputPath, outputDir string) (int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPattern := filepath.Join(outputDir, FramePattern)
	args := []string{
		"-hide_banner",
		"-nostdin",
		"-i", inputPath,
		"-q:v", fmt.Sprintf("%d", f.quality),
		"-y",
		outputPattern,
	}

	runCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, f.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		removeFrames(outputDir)
		return 0, fmt.Errorf("%w after %s: video file may be corrupted or too large", ErrTimeout, f.timeout)
	}
	if err != nil {
		return 0, fmt.Errorf("ffmpeg failed: %w, stderr: %s", err, stderrTail(stderr.String()))
	}

	count, err := CountFrames(outputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to count extracted frames: %w", err)
	}
	return count, nil
}

// CountFrames returns the number of frame files present in dir
func CountFrames(dir string) (int, error) {
	frames, err := filepath.Glob(filepath.Join(dir, FrameGlob))
	if err != nil {
		return 0, err
	}
	return len(frames), nil
}

// removeFrames deletes any frame files in dir, ignoring individual errors
func removeFrames(dir string) {
	frames, err := filepath.Glob(filepath.Join(dir, FrameGlob))
	if err != nil {
		return
	}
	for _, frame := range frames {
		os.Remove(frame)
	}
}

// stderrTail returns the last few lines of ffmpeg's diagnostic output
func stderrTail(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return strings.Join(lines, "\n")
}
