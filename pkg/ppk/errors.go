package ppk

import "github.com/cartpauj/ppk-to-openssh/internal/ppkerr"

// Code identifies the machine-readable error category returned by Parse, so
// callers can branch on the failure class without parsing error strings.
type Code = ppkerr.Code

const (
	CodeInvalidInput          = ppkerr.CodeInvalidInput
	CodeFileTooLarge          = ppkerr.CodeFileTooLarge
	CodeFieldTooLarge         = ppkerr.CodeFieldTooLarge
	CodeBufferUnderrun        = ppkerr.CodeBufferUnderrun
	CodeWrongFormat           = ppkerr.CodeWrongFormat
	CodeInvalidPpkFormat      = ppkerr.CodeInvalidPpkFormat
	CodeUnsupportedVersion    = ppkerr.CodeUnsupportedVersion
	CodeMissingField          = ppkerr.CodeMissingField
	CodeInvalidBase64         = ppkerr.CodeInvalidBase64
	CodeUnsupportedEncryption = ppkerr.CodeUnsupportedEncryption
	CodeUnsupportedArgon2     = ppkerr.CodeUnsupportedArgon2
	CodePassphraseRequired    = ppkerr.CodePassphraseRequired
	CodeInvalidMac            = ppkerr.CodeInvalidMac
	CodeUnsupportedAlgorithm  = ppkerr.CodeUnsupportedAlgorithm
	CodeInvalidArguments      = ppkerr.CodeInvalidArguments
)

// Sentinel errors, one per Code, so callers can branch with errors.Is
// without string-matching.
var (
	ErrInvalidInput          = ppkerr.ErrInvalidInput
	ErrFileTooLarge          = ppkerr.ErrFileTooLarge
	ErrFieldTooLarge         = ppkerr.ErrFieldTooLarge
	ErrBufferUnderrun        = ppkerr.ErrBufferUnderrun
	ErrWrongFormat           = ppkerr.ErrWrongFormat
	ErrInvalidPpkFormat      = ppkerr.ErrInvalidPpkFormat
	ErrUnsupportedVersion    = ppkerr.ErrUnsupportedVersion
	ErrMissingField          = ppkerr.ErrMissingField
	ErrInvalidBase64         = ppkerr.ErrInvalidBase64
	ErrUnsupportedEncryption = ppkerr.ErrUnsupportedEncryption
	ErrUnsupportedArgon2     = ppkerr.ErrUnsupportedArgon2
	ErrPassphraseRequired    = ppkerr.ErrPassphraseRequired
	ErrInvalidMac            = ppkerr.ErrInvalidMac
	ErrUnsupportedAlgorithm  = ppkerr.ErrUnsupportedAlgorithm
	ErrInvalidArguments      = ppkerr.ErrInvalidArguments
)

// Error wraps a sentinel error with the operation that failed and an
// optional human-oriented hint. It never carries passphrase or key bytes.
// Every internal/* stage constructs these through internal/ppkerr; Parse
// surfaces them to callers unchanged.
type Error = ppkerr.Error

func errf(code Code, op string, hint string) *Error {
	return ppkerr.New(code, op, hint)
}

func errWithDetails(code Code, op string, hint string, details map[string]any) *Error {
	return ppkerr.NewWithDetails(code, op, hint, details)
}
