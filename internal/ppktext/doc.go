// Package ppktext tokenises the line-oriented PuTTY private key (PPK)
// container into a structured Record. It recognises both PPK v2 and v3
// headers, concatenates the Public-Lines/Private-Lines base64 bodies, and
// applies the pre-parse format gating that turns a misidentified OpenSSH or
// PEM key into a helpful error instead of a confusing parse failure deeper
// in the pipeline.
package ppktext
