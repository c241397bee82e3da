package logging

import (
	"context"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// sensitiveKeys lists the args keys this codec's own call sites use for
// values that must never reach a log sink verbatim: passphrases, derived
// KDF/MAC key material, and decrypted private blobs. A Logger scrubs these
// automatically so a call site that passes one of them by name without
// wrapping it in Redacted still cannot leak it.
var sensitiveKeys = map[string]struct{}{
	"passphrase":        {},
	"output_passphrase": {},
	"mac_key":           {},
	"derived_key":       {},
	"private_blob":      {},
}

// Logger defines the subset of slog functionality used by the ppk codec.
// The interface is intentionally small so applications can provide their own
// implementation for testing or redaction policies.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds to
// slog.Default(). Every record passes through scrub before reaching logger.
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, scrub(args)...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, scrub(args)...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, scrub(args)...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, scrub(args)...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(scrub(args)...)}
}

// scrub replaces the value half of any key/value pair in args whose key is
// in sensitiveKeys with the redacted placeholder. args is a flat key/value
// sequence, slog's own convention; a trailing unpaired key is left alone
// since there is no value to scrub.
func scrub(args []any) []any {
	out := make([]any, len(args))
	copy(out, args)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}
		if _, sensitive := sensitiveKeys[key]; sensitive {
			out[i+1] = redactedPlaceholder
		}
	}
	return out
}

// Redacted marks an attribute as sensitive explicitly, for call sites using
// a key outside sensitiveKeys that still should never carry its raw value.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the canonical string that represents a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}

// NoOp returns a Logger that discards everything. It is the default used by
// Options when no Logger is supplied, so the core stays silent unless a
// caller opts in. Scrubbing is skipped since there is nothing to write.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (noopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (noopLogger) With(args ...any) Logger                            { return noopLogger{} }
