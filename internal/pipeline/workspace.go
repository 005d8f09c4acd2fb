package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pitchlab/pitchframes/internal/extractor"
	"github.com/pitchlab/pitchframes/pkg/models"
)

// Subdirectory names of a per-video workspace.
const (
	allFramesDirName     = "all_frames"
	releaseFramesDirName = "release_frames"
)

// Workspace is the per-video output directory tree:
//
//	<videosDir>/<name>/all_frames/      every extracted frame
//	<videosDir>/<name>/release_frames/  empty, for manual curation
type Workspace struct {
	root string
	name string
}

// NewWorkspace returns the workspace for a video under videosDir. Nothing
// is created on disk until Scaffold is called.
func NewWorkspace(videosDir string, video models.Video) Workspace {
	return Workspace{root: videosDir, name: video.Name()}
}

// Dir returns the workspace root directory
func (w Workspace) Dir() string {
	return filepath.Join(w.root, w.name)
}

// AllFramesDir returns the directory holding every extracted frame
func (w Workspace) AllFramesDir() string {
	return filepath.Join(w.root, w.name, allFramesDirName)
}

// ReleaseFramesDir returns the curation directory
func (w Workspace) ReleaseFramesDir() string {
	return filepath.Join(w.root, w.name, releaseFramesDirName)
}

// Processed reports whether this video already has extracted frames, and
// how many. The answer is derived purely from filesystem state: the frames
// directory must exist and contain at least one frame file. An empty or
// partially created directory counts as not processed. Read-only.
func (w Workspace) Processed() (bool, int, error) {
	framesDir := w.AllFramesDir()
	if _, err := os.Stat(framesDir); err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("failed to inspect %s: %w", framesDir, err)
	}

	count, err := extractor.CountFrames(framesDir)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count frames in %s: %w", framesDir, err)
	}
	return count > 0, count, nil
}

// Scaffold creates the two fixed subdirectories. Idempotent.
func (w Workspace) Scaffold() error {
	if err := os.MkdirAll(w.AllFramesDir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", w.AllFramesDir(), err)
	}
	if err := os.MkdirAll(w.ReleaseFramesDir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", w.ReleaseFramesDir(), err)
	}
	return nil
}
