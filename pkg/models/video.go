package models

import (
	"path/filepath"
	"strings"
)

// Video represents one input video file discovered in the videos directory
type Video struct {
	Path string `json:"path"`
}

// Name returns the video's identity: the base filename without its extension.
// It is also the name of the per-video output directory.
func (v Video) Name() string {
	base := filepath.Base(v.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Filename returns the base filename including the extension
func (v Video) Filename() string {
	return filepath.Base(v.Path)
}
