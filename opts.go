package binconv

import (
	"context"
	"log/slog"
)

type TranslateOption func(*Translator)

// WithLogger traces tokens and emitted bytes to l at debug level.
func WithLogger(l *slog.Logger) TranslateOption {
	return func(t *Translator) {
		if l == nil {
			return
		}
		t.log = l
		t.debug = l.Enabled(context.Background(), slog.LevelDebug)
	}
}
