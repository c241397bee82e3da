// Package logging provides a minimal logging facade for the ppk codec.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing, redaction,
// or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/cartpauj/ppk-to-openssh/pkg/ppk/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
//	// Or discard everything (the default inside Options{})
//	quiet := logging.NoOp()
//
// # Redaction Support
//
// The slog-backed Logger scrubs a fixed set of argument keys automatically
// before they reach the underlying slog.Logger: "passphrase",
// "output_passphrase", "mac_key", "derived_key", and "private_blob" always
// log as "[redacted]" regardless of what value a call site passes for them.
// This is a backstop, not a substitute for care at the call site:
//
//	// Scrubbed automatically, even without Redacted:
//	logger.Debug(ctx, "mac key derived", "mac_key", macKey, "version", 3)
//
//	// Mark an attribute as redacted explicitly, e.g. for a key name outside
//	// the fixed list:
//	logger.Info(ctx, "comment field captured", logging.Redacted("comment_backup"))
//
//	// Get the redaction placeholder
//	placeholder := logging.Placeholder() // Returns "[redacted]"
//
// # Usage in the codec
//
// Parse logs the identified PPK version/algorithm/encryption, the MAC
// verification outcome, and the output format chosen. It does not log which
// KDF was used, and never logs the passphrase, the derived key material, or
// the MAC value itself:
//
//	opts.Logger.Debug(ctx, "ppk text parsed", "version", rec.Version, "algorithm", rec.Algorithm, "encryption", rec.Encryption)
//	opts.Logger.Warn(ctx, "mac verification failed", "version", rec.Version)
//	opts.Logger.Debug(ctx, "mac verified")
//	opts.Logger.Info(ctx, "ppk converted", "algorithm", string(decoded.Algorithm), "output_format", string(outputFormat))
//
// # Custom Implementations
//
// Applications can provide custom Logger implementations:
//
//	type customLogger struct {
//	    // ... your fields
//	}
//
//	func (l *customLogger) Debug(ctx context.Context, msg string, args ...any) {
//	    // Custom debug logic
//	}
//	// ... implement other methods
//
//	logger := &customLogger{}
//
// # Security Considerations
//
//   - Never log passphrases, derived keys, MAC keys, or private key material
//   - Use logging.Redacted() to mark sensitive attributes
//   - Ensure log storage is secure and access-controlled
package logging
