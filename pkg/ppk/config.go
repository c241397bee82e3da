package ppk

import "github.com/cartpauj/ppk-to-openssh/pkg/ppk/logging"

// OutputFormat selects the private-key container Parse produces.
type OutputFormat string

const (
	// OutputPEM emits PKCS#1 (RSA), a plain DSA SEQUENCE, or SEC1
	// (ECDSA) DER wrapped in a PEM block. Ed25519 always uses OpenSSH v1
	// regardless of this setting, since there is no standard PEM container
	// for Ed25519 private keys.
	OutputPEM OutputFormat = "pem"

	// OutputOpenSSH forces the openssh-key-v1 container for every algorithm.
	OutputOpenSSH OutputFormat = "openssh"
)

const (
	defaultMaxFileSizeBytes  = 1 << 20 // 1 MiB
	defaultMaxFieldSizeBytes = 1 << 20 // 1 MiB
)

// Options expresses the knobs Parse accepts. The zero value is valid: it
// parses unencrypted input, emits PEM where possible, and applies the
// documented 1 MiB size caps.
type Options struct {
	// OutputFormat selects the private-key container. Empty means OutputPEM.
	OutputFormat OutputFormat

	// Encrypt re-encrypts the re-encoded OpenSSH v1 private key under
	// OutputPassphrase. Requires OutputPassphrase to be non-empty. PEM
	// output is never encrypted, so Encrypt has no effect when Parse emits PEM.
	Encrypt bool

	// OutputPassphrase is the passphrase used to encrypt the re-encoded
	// key when Encrypt is true. Ignored otherwise.
	OutputPassphrase string

	// MaxFileSizeBytes caps the total PPK input size. Zero means the
	// default of 1 MiB.
	MaxFileSizeBytes uint32

	// MaxFieldSizeBytes caps any single length-prefixed wire field read
	// while decoding SSH wire blobs. Zero means the default of 1 MiB.
	MaxFieldSizeBytes uint32

	// Logger receives diagnostic events during conversion. A nil Logger
	// means no logging occurs; Parse never requires one.
	Logger logging.Logger
}

// withDefaults returns a copy of o with zero-valued fields filled in.
func (o Options) withDefaults() Options {
	if o.OutputFormat == "" {
		o.OutputFormat = OutputPEM
	}
	if o.MaxFileSizeBytes == 0 {
		o.MaxFileSizeBytes = defaultMaxFileSizeBytes
	}
	if o.MaxFieldSizeBytes == 0 {
		o.MaxFieldSizeBytes = defaultMaxFieldSizeBytes
	}
	if o.Logger == nil {
		o.Logger = logging.NoOp()
	}
	return o
}

// validate rejects Options that request encrypted output without a
// passphrase to encrypt it under.
func (o Options) validate() error {
	if o.Encrypt && o.OutputPassphrase == "" {
		return errf(CodeInvalidArguments, "Options.validate", "encrypt requires a non-empty output passphrase")
	}
	return nil
}
