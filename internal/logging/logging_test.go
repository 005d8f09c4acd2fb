package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "JSON format to stdout",
			config: Config{
				Level:  "info",
				Format: "json",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "Console format to stderr",
			config: Config{
				Level:  "debug",
				Format: "console",
				Output: "stderr",
			},
			wantErr: false,
		},
		{
			name: "Invalid log level defaults to info",
			config: Config{
				Level:  "invalid",
				Format: "json",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "Unwritable file path",
			config: Config{
				Level:  "info",
				Format: "json",
				Output: "/does-not-exist/pitchframes.log",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Error("Expected non-nil logger")
			}
		})
	}
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	logger, err := NewLogger(Config{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected log output in file")
	}
}

func TestLoggerMethods(t *testing.T) {
	logger, err := NewLogger(Config{
		Level:  "debug",
		Format: "json",
		Output: os.DevNull,
	})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	// None of these should panic.
	logger.Debug("test debug message")
	logger.Debugf("formatted %s", "debug")
	logger.Info("test info message")
	logger.Infof("formatted %s", "info")
	logger.Warn("test warn message")
	logger.Warnf("formatted %s", "warn")
	logger.Error("test error message")
	logger.Errorf("formatted %s", "error")
	logger.ErrorWithErr("with error", os.ErrNotExist)
	logger.LogVideoEvent("game1.mp4", "extracted", map[string]interface{}{"frames": 42})
}

func TestLoggerWithFields(t *testing.T) {
	logger, err := NewLogger(Config{
		Level:  "info",
		Format: "json",
		Output: os.DevNull,
	})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if logger.WithField("key", "value") == nil {
		t.Error("Expected non-nil logger from WithField")
	}
	if logger.WithError(os.ErrNotExist) == nil {
		t.Error("Expected non-nil logger from WithError")
	}
	if logger.WithRunID("run-123") == nil {
		t.Error("Expected non-nil logger from WithRunID")
	}
	if logger.WithVideo("game1.mp4") == nil {
		t.Error("Expected non-nil logger from WithVideo")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	logger, err := NewConsoleLogger()
	if err != nil {
		t.Fatalf("Failed to create console logger: %v", err)
	}
	if logger == nil {
		t.Error("Expected non-nil logger")
	}
}
