package ppkerr

import (
	"errors"
	"fmt"
)

// Code identifies the machine-readable error category returned by Parse.
type Code string

const (
	CodeInvalidInput          Code = "InvalidInput"
	CodeFileTooLarge          Code = "FileTooLarge"
	CodeFieldTooLarge         Code = "FieldTooLarge"
	CodeBufferUnderrun        Code = "BufferUnderrun"
	CodeWrongFormat           Code = "WrongFormat"
	CodeInvalidPpkFormat      Code = "InvalidPpkFormat"
	CodeUnsupportedVersion    Code = "UnsupportedVersion"
	CodeMissingField          Code = "MissingField"
	CodeInvalidBase64         Code = "InvalidBase64"
	CodeUnsupportedEncryption Code = "UnsupportedEncryption"
	CodeUnsupportedArgon2     Code = "UnsupportedArgon2"
	CodePassphraseRequired    Code = "PassphraseRequired"
	CodeInvalidMac            Code = "InvalidMac"
	CodeUnsupportedAlgorithm  Code = "UnsupportedAlgorithm"
	CodeInvalidArguments      Code = "InvalidArguments"
)

// Sentinel errors, one per Code, so callers can branch with errors.Is
// without string-matching. Error wraps these with operation context and an
// optional human hint; Unwrap exposes the sentinel.
var (
	ErrInvalidInput          = errors.New("ppk: invalid input")
	ErrFileTooLarge          = errors.New("ppk: file too large")
	ErrFieldTooLarge         = errors.New("ppk: field too large")
	ErrBufferUnderrun        = errors.New("ppk: buffer underrun")
	ErrWrongFormat           = errors.New("ppk: wrong format")
	ErrInvalidPpkFormat      = errors.New("ppk: invalid ppk format")
	ErrUnsupportedVersion    = errors.New("ppk: unsupported version")
	ErrMissingField          = errors.New("ppk: missing field")
	ErrInvalidBase64         = errors.New("ppk: invalid base64")
	ErrUnsupportedEncryption = errors.New("ppk: unsupported encryption")
	ErrUnsupportedArgon2     = errors.New("ppk: unsupported argon2 flavor")
	ErrPassphraseRequired    = errors.New("ppk: passphrase required")
	ErrInvalidMac            = errors.New("ppk: invalid mac")
	ErrUnsupportedAlgorithm  = errors.New("ppk: unsupported algorithm")
	ErrInvalidArguments      = errors.New("ppk: invalid arguments")
)

var sentinelByCode = map[Code]error{
	CodeInvalidInput:          ErrInvalidInput,
	CodeFileTooLarge:          ErrFileTooLarge,
	CodeFieldTooLarge:         ErrFieldTooLarge,
	CodeBufferUnderrun:        ErrBufferUnderrun,
	CodeWrongFormat:           ErrWrongFormat,
	CodeInvalidPpkFormat:      ErrInvalidPpkFormat,
	CodeUnsupportedVersion:    ErrUnsupportedVersion,
	CodeMissingField:          ErrMissingField,
	CodeInvalidBase64:         ErrInvalidBase64,
	CodeUnsupportedEncryption: ErrUnsupportedEncryption,
	CodeUnsupportedArgon2:     ErrUnsupportedArgon2,
	CodePassphraseRequired:    ErrPassphraseRequired,
	CodeInvalidMac:            ErrInvalidMac,
	CodeUnsupportedAlgorithm:  ErrUnsupportedAlgorithm,
	CodeInvalidArguments:      ErrInvalidArguments,
}

// Error wraps a sentinel error with the operation that failed and an
// optional human-oriented hint. It never carries passphrase or key bytes.
type Error struct {
	Code Code
	Op   string
	Err  error
	Hint string

	// Details carries structured, non-secret context (e.g. the rejected
	// PPK version number) for callers that want more than the hint string.
	Details map[string]any
}

func (e *Error) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("ppk.%s: %v (%s)", e.Op, e.Err, e.Hint)
	}
	return fmt.Sprintf("ppk.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an *Error for the given code, operation name, and optional
// hint. Hint must never contain secrets.
func New(code Code, op string, hint string) *Error {
	return NewWithDetails(code, op, hint, nil)
}

// NewWithDetails is New plus structured, non-secret details.
func NewWithDetails(code Code, op string, hint string, details map[string]any) *Error {
	sentinel, ok := sentinelByCode[code]
	if !ok {
		sentinel = errors.New("ppk: " + string(code))
	}
	return &Error{Code: code, Op: op, Err: sentinel, Hint: hint, Details: details}
}
