package ppktext

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/cartpauj/ppk-to-openssh/internal/ppkerr"
)

// Argon2Params carries the v3 key-derivation parameters read from the
// Key-Derivation:/Argon2-*: headers. Present on a Record iff version=3 and
// encryption is not "none".
type Argon2Params struct {
	Flavor      string // "Argon2i", "Argon2d", or "Argon2id"
	MemoryKiB   uint32
	Passes      uint32
	Parallelism uint32
	Salt        []byte
}

// Record is the structured result of tokenising a PPK text container.
type Record struct {
	Version     int
	Algorithm   string
	Encryption  string
	Comment     string
	PublicBlob  []byte
	PrivateBlob []byte
	MACHex      string
	Argon2      *Argon2Params
}

const (
	headerPrefix = "PuTTY-User-Key-File-"
	beginMarker  = "-----BEGIN "
)

// Parse tokenises raw PPK text into a Record. maxFileSize and maxFieldSize
// bound the overall input and any individual base64 body respectively; a
// value of 0 disables the corresponding cap.
func Parse(text string, maxFileSize, maxFieldSize uint32) (*Record, error) {
	const op = "ppktext.Parse"

	if len(text) == 0 {
		return nil, ppkerr.New(ppkerr.CodeInvalidInput, op, "input is empty")
	}
	if maxFileSize > 0 && uint32(len(text)) > maxFileSize {
		return nil, ppkerr.New(ppkerr.CodeFileTooLarge, op, "input exceeds max_file_size_bytes")
	}
	if strings.Contains(text, beginMarker) {
		return nil, ppkerr.New(ppkerr.CodeWrongFormat, op, "input looks like an OpenSSH or PEM key, not a PPK")
	}
	if !strings.Contains(text, headerPrefix) {
		return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "missing PuTTY-User-Key-File- header")
	}

	lines := splitLines(text)
	if len(lines) == 0 || !strings.HasPrefix(lines[0], headerPrefix) {
		return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "first line is not a PuTTY-User-Key-File- header")
	}

	rest := lines[0][len(headerPrefix):]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "malformed PuTTY-User-Key-File- header")
	}
	versionStr := rest[:colon]
	algorithm := strings.TrimSpace(rest[colon+1:])

	version, err := strconv.Atoi(strings.TrimSpace(versionStr))
	if err != nil {
		return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "non-numeric PPK version")
	}
	if version != 2 && version != 3 {
		return nil, ppkerr.NewWithDetails(ppkerr.CodeUnsupportedVersion, op, "only PPK versions 2 and 3 are supported",
			map[string]any{"version": version})
	}

	rec := &Record{Version: version, Algorithm: algorithm}

	var (
		publicB64, privateB64 strings.Builder
		sawPublicLines        bool
		sawPrivateLines       bool
		argon2Memory          *uint32
		argon2Passes          *uint32
		argon2Parallelism     *uint32
		argon2Salt            string
		keyDerivation         string
	)

	i := 1
	for i < len(lines) {
		line := lines[i]
		if line == "" {
			i++
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			i++
			continue
		}
		key := line[:colon]
		value := strings.TrimSpace(line[colon+1:])

		switch key {
		case "Encryption":
			rec.Encryption = value
			i++
		case "Comment":
			rec.Comment = value
			i++
		case "Key-Derivation":
			keyDerivation = value
			i++
		case "Argon2-Memory":
			v, convErr := parseUint32(value)
			if convErr != nil {
				return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "non-numeric Argon2-Memory")
			}
			argon2Memory = &v
			i++
		case "Argon2-Passes":
			v, convErr := parseUint32(value)
			if convErr != nil {
				return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "non-numeric Argon2-Passes")
			}
			argon2Passes = &v
			i++
		case "Argon2-Parallelism":
			v, convErr := parseUint32(value)
			if convErr != nil {
				return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "non-numeric Argon2-Parallelism")
			}
			argon2Parallelism = &v
			i++
		case "Argon2-Salt":
			argon2Salt = value
			i++
		case "Private-MAC":
			rec.MACHex = value
			i++
		case "Public-Lines":
			sawPublicLines = true
			n, convErr := strconv.Atoi(value)
			if convErr != nil || n < 0 {
				return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "non-numeric Public-Lines count")
			}
			i++
			for j := 0; j < n && i < len(lines); j++ {
				publicB64.WriteString(lines[i])
				i++
			}
		case "Private-Lines":
			sawPrivateLines = true
			n, convErr := strconv.Atoi(value)
			if convErr != nil || n < 0 {
				return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "non-numeric Private-Lines count")
			}
			i++
			for j := 0; j < n && i < len(lines); j++ {
				privateB64.WriteString(lines[i])
				i++
			}
		default:
			i++
		}
	}

	if rec.Algorithm == "" || !sawPublicLines || !sawPrivateLines {
		return nil, ppkerr.New(ppkerr.CodeMissingField, op, "required header absent")
	}

	publicBlob, err := decodeBase64Field(publicB64.String(), maxFieldSize, op)
	if err != nil {
		return nil, err
	}
	privateBlob, err := decodeBase64Field(privateB64.String(), maxFieldSize, op)
	if err != nil {
		return nil, err
	}
	if len(publicBlob) == 0 || len(privateBlob) == 0 {
		return nil, ppkerr.New(ppkerr.CodeMissingField, op, "public or private body is empty")
	}
	rec.PublicBlob = publicBlob
	rec.PrivateBlob = privateBlob

	if rec.MACHex == "" {
		return nil, ppkerr.New(ppkerr.CodeMissingField, op, "Private-MAC header absent")
	}

	if version == 3 && rec.Encryption != "" && rec.Encryption != "none" {
		if keyDerivation == "" || argon2Memory == nil || argon2Passes == nil || argon2Parallelism == nil || argon2Salt == "" {
			return nil, ppkerr.New(ppkerr.CodeMissingField, op, "Argon2 headers absent for encrypted v3 key")
		}
		salt, decErr := decodeHex(argon2Salt)
		if decErr != nil {
			return nil, ppkerr.New(ppkerr.CodeInvalidPpkFormat, op, "Argon2-Salt is not valid hex")
		}
		rec.Argon2 = &Argon2Params{
			Flavor:      keyDerivation,
			MemoryKiB:   *argon2Memory,
			Passes:      *argon2Passes,
			Parallelism: *argon2Parallelism,
			Salt:        salt,
		}
	}

	return rec, nil
}

func decodeBase64Field(s string, maxFieldSize uint32, op string) ([]byte, error) {
	if maxFieldSize > 0 && uint32(len(s)) > maxFieldSize*2 {
		return nil, ppkerr.New(ppkerr.CodeFieldTooLarge, op, "base64 body exceeds max_field_size_bytes")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ppkerr.New(ppkerr.CodeInvalidBase64, op, "malformed base64 body")
	}
	return b, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func decodeHex(s string) ([]byte, error) {
	out := make([]byte, len(s)/2)
	if len(s)%2 != 0 {
		return nil, strconv.ErrSyntax
	}
	for i := 0; i < len(out); i++ {
		hi, err := hexNibble(s[i*2])
		if err != nil {
			return nil, err
		}
		lo, err := hexNibble(s[i*2+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, strconv.ErrSyntax
	}
}

func splitLines(text string) []string {
	normalised := strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(normalised, "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	return raw
}
