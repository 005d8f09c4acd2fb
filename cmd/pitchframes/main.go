// Command pitchframes batch-extracts every frame of the MP4 videos in a
// directory into per-video workspaces for manual frame curation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/pitchlab/pitchframes/internal/config"
	"github.com/pitchlab/pitchframes/internal/extractor"
	"github.com/pitchlab/pitchframes/internal/logging"
	"github.com/pitchlab/pitchframes/internal/pipeline"
)

func main() {
	flags := config.NewFlagSet("pitchframes")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "pitchframes: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pitchframes: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pitchframes: %v\n", err)
		os.Exit(1)
	}
	log = log.WithRunID(uuid.NewString())

	// Precondition: a usable videos directory. With no override this is
	// <home>/Desktop/baseball_vids, and a missing desktop is fatal.
	videosDir, err := cfg.ResolveVideosDir()
	if err != nil {
		log.ErrorWithErr("Cannot determine videos directory", err)
		log.Error("Pass --videos-dir to point at your video files")
		os.Exit(1)
	}
	log.Infof("Videos directory: %s", videosDir)

	// Precondition: ffmpeg must be available before any file processing.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ffmpeg := extractor.New(cfg.Extractor)
	version, err := ffmpeg.Version(ctx)
	if err != nil {
		log.ErrorWithErr("FFmpeg is not available", err)
		log.Error("Please install ffmpeg:")
		log.Error("  brew install ffmpeg     (macOS)")
		log.Error("  apt install ffmpeg      (Debian/Ubuntu)")
		os.Exit(1)
	}
	log.Infof("FFmpeg found: %s", version)

	// Per-video failures are reported in the summary, not via exit code.
	runner := pipeline.NewRunner(cfg, ffmpeg, log)
	runner.Run(ctx, videosDir)
}
