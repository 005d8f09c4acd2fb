package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pitchlab/pitchframes/pkg/models"
)

// ErrVideosDirNotFound means the videos directory does not exist. It is a
// "nothing to do" condition, not a crash: the caller reports guidance and
// ends the run cleanly.
var ErrVideosDirNotFound = errors.New("videos directory not found")

// videoExt is the accepted container format, matched case-insensitively
// on the filename extension.
const videoExt = ".mp4"

// Discover lists the video files directly inside videosDir, matching the
// container extension case-insensitively, sorted lexicographically for a
// deterministic processing order. Subdirectories (including previously
// created per-video workspaces) are never treated as inputs.
func Discover(videosDir string) ([]models.Video, error) {
	entries, err := os.ReadDir(videosDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrVideosDirNotFound, videosDir)
		}
		return nil, fmt.Errorf("failed to list videos directory: %w", err)
	}

	var videos []models.Video
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), videoExt) {
			continue
		}
		videos = append(videos, models.Video{Path: filepath.Join(videosDir, entry.Name())})
	}

	sort.Slice(videos, func(i, j int) bool {
		return videos[i].Path < videos[j].Path
	})
	return videos, nil
}
