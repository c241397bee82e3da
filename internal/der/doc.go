// Package der emits strict DER encodings for the small set of ASN.1
// constructs the PEM writers need: INTEGER, OCTET STRING, OBJECT IDENTIFIER,
// BIT STRING, SEQUENCE, and explicit context tags.
//
// This is a hand-rolled writer rather than encoding/asn1 because the PPK
// integer fields arrive as unnormalised big-endian byte strings (no stripped
// leading zero, no guarantee the high bit is clear) and the writer must
// apply exactly the sign-extension rule in the comments below, not Go's
// math/big normalisation.
package der
