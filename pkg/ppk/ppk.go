package ppk

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"github.com/cartpauj/ppk-to-openssh/internal/cbccodec"
	"github.com/cartpauj/ppk-to-openssh/internal/fingerprint"
	"github.com/cartpauj/ppk-to-openssh/internal/kdf"
	"github.com/cartpauj/ppk-to-openssh/internal/keyalgo"
	"github.com/cartpauj/ppk-to-openssh/internal/mac"
	"github.com/cartpauj/ppk-to-openssh/internal/opensshkey"
	"github.com/cartpauj/ppk-to-openssh/internal/pemkey"
	"github.com/cartpauj/ppk-to-openssh/internal/ppktext"
)

// Parse converts PPK text into standard OpenSSH/PEM key material.
//
// It runs a fixed pipeline to completion: the container text is tokenized,
// the private blob is decrypted if the file is encrypted, the keyed MAC
// over the authenticated fields is verified, the algorithm-specific key
// parameters are decoded from their SSH wire encoding, and the result is
// re-encoded as an OpenSSH v1 or PEM private key (the OpenSSH v1 form
// optionally re-encrypted under a new passphrase; PEM output is never
// encrypted), alongside its public key line and fingerprint.
// Any stage failure aborts the whole call with a typed *Error; there is no
// partial result and no retry — callers reissue Parse with a corrected
// passphrase or options.
func Parse(ppkText string, passphrase string, options Options) (ConvertedKey, error) {
	ctx := context.Background()

	passphraseCopy := passphrase
	defer zeroizeString(&passphraseCopy)

	if err := options.validate(); err != nil {
		return ConvertedKey{}, err
	}
	opts := options.withDefaults()

	rec, err := ppktext.Parse(ppkText, opts.MaxFileSizeBytes, opts.MaxFieldSizeBytes)
	if err != nil {
		return ConvertedKey{}, err
	}
	opts.Logger.Debug(ctx, "ppk text parsed", "version", rec.Version, "algorithm", rec.Algorithm, "encryption", rec.Encryption)

	plaintext, macKeyV3, macPassphrase, err := decrypt(rec, passphraseCopy)
	if err != nil {
		return ConvertedKey{}, err
	}
	defer zeroizeBytes(plaintext)
	defer zeroizeBytes(macKeyV3[:])
	defer zeroizeString(&macPassphrase)

	if err := verifyMAC(rec, plaintext, macPassphrase, macKeyV3); err != nil {
		opts.Logger.Warn(ctx, "mac verification failed", "version", rec.Version)
		return ConvertedKey{}, err
	}
	opts.Logger.Debug(ctx, "mac verified")

	decoded, err := keyalgo.Decode(rec.Algorithm, rec.PublicBlob, plaintext, int(opts.MaxFieldSizeBytes))
	if err != nil {
		return ConvertedKey{}, err
	}

	outputFormat := opts.OutputFormat
	if decoded.Algorithm == keyalgo.Ed25519 {
		outputFormat = OutputOpenSSH
	}

	privateKeyText, err := encode(decoded, rec.PublicBlob, rec.Comment, outputFormat, opts)
	if err != nil {
		return ConvertedKey{}, err
	}

	publicKeyText := string(decoded.Algorithm) + " " + base64.StdEncoding.EncodeToString(rec.PublicBlob)
	if rec.Comment != "" {
		publicKeyText += " " + rec.Comment
	}

	result := ConvertedKey{
		PrivateKey:  privateKeyText,
		PublicKey:   publicKeyText,
		Fingerprint: fingerprint.SHA256(rec.PublicBlob),
		Algorithm:   decoded.Algorithm,
		Comment:     rec.Comment,
		Curve:       decoded.Curve(),
	}
	opts.Logger.Info(ctx, "ppk converted", "algorithm", string(decoded.Algorithm), "output_format", string(outputFormat))
	return result, nil
}

// decrypt returns the plaintext private blob, the v3 MAC key (zero for v2
// or unencrypted v3), and the passphrase the v2 MAC key is derived from
// (empty unless the file is v2-encrypted).
func decrypt(rec *ppktext.Record, passphrase string) ([]byte, [32]byte, string, error) {
	const op = "ppk.decrypt"

	var macKeyV3 [32]byte

	switch rec.Encryption {
	case "none", "":
		return append([]byte(nil), rec.PrivateBlob...), macKeyV3, "", nil
	case "aes256-cbc":
		if passphrase == "" {
			return nil, macKeyV3, "", errf(CodePassphraseRequired, op, "this key is encrypted and requires a passphrase")
		}
		switch rec.Version {
		case 2:
			mat := kdf.DeriveV2(passphrase)
			defer zeroizeBytes(mat.Key[:])
			plaintext, err := cbccodec.DecryptAES256CBCNoPadding(mat.Key, mat.IV, rec.PrivateBlob)
			if err != nil {
				return nil, macKeyV3, "", err
			}
			return plaintext, macKeyV3, passphrase, nil
		case 3:
			if rec.Argon2 == nil {
				return nil, macKeyV3, "", errf(CodeMissingField, op, "encrypted v3 key is missing its Argon2 parameters")
			}
			mat, err := kdf.DeriveV3(passphrase, kdf.Argon2Params{
				Flavor:      kdf.Argon2Flavor(rec.Argon2.Flavor),
				MemoryKiB:   rec.Argon2.MemoryKiB,
				Passes:      rec.Argon2.Passes,
				Parallelism: rec.Argon2.Parallelism,
				Salt:        rec.Argon2.Salt,
			})
			if err != nil {
				return nil, macKeyV3, "", err
			}
			defer zeroizeBytes(mat.Key[:])
			plaintext, err := cbccodec.DecryptAES256CBCNoPadding(mat.Key, mat.IV, rec.PrivateBlob)
			if err != nil {
				return nil, macKeyV3, "", err
			}
			return plaintext, mat.MACKey, "", nil
		default:
			return nil, macKeyV3, "", errf(CodeUnsupportedVersion, op, "unsupported PPK version")
		}
	default:
		return nil, macKeyV3, "", errf(CodeUnsupportedEncryption, op, "encryption type must be \"none\" or \"aes256-cbc\"")
	}
}

func verifyMAC(rec *ppktext.Record, plaintext []byte, macPassphrase string, macKeyV3 [32]byte) error {
	fields := mac.Fields{
		Algorithm:        rec.Algorithm,
		Encryption:       rec.Encryption,
		Comment:          rec.Comment,
		PublicBlob:       rec.PublicBlob,
		PrivateBlobPlain: plaintext,
	}

	wasEncrypted := rec.Encryption == "aes256-cbc"

	var computed string
	if rec.Version == 2 {
		computed = mac.ComputeV2(fields, macPassphrase)
	} else {
		computed = mac.ComputeV3(fields, macKeyV3)
	}
	return mac.Verify(computed, rec.MACHex, wasEncrypted)
}

func encode(decoded *keyalgo.DecodedKey, publicBlob []byte, comment string, format OutputFormat, opts Options) (string, error) {
	const op = "ppk.encode"

	if format == OutputOpenSSH {
		var encryptOpts *opensshkey.EncryptOptions
		if opts.Encrypt {
			encryptOpts = &opensshkey.EncryptOptions{Passphrase: opts.OutputPassphrase}
		}
		return opensshkey.Encode(decoded, publicBlob, comment, encryptOpts, rand.Reader)
	}

	switch decoded.Algorithm {
	case keyalgo.RSA:
		return pemkey.EncodeRSA(decoded.RSA), nil
	case keyalgo.DSA:
		return pemkey.EncodeDSA(decoded.DSA), nil
	case keyalgo.ECDSA256, keyalgo.ECDSA384, keyalgo.ECDSA521:
		return pemkey.EncodeECDSA(decoded.ECDSA, decoded.Curve())
	default:
		return "", errf(CodeUnsupportedAlgorithm, op, "no PEM representation for this algorithm")
	}
}
