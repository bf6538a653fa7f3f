package usecase

import (
	"io"
	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
