package impl

import (
	"io"
	"log/slog"

	"mart/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxLines, maxLineQuantity int) *config.Config {
	return &config.Config{
		Cart: &config.CartConfig{
			MaxLines:        maxLines,
			MaxLineQuantity: maxLineQuantity,
		},
	}
}
