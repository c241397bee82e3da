// Package wire reads the length-prefixed SSH wire encoding used inside PPK
// public/private blobs: each field is either a raw byte run of a known
// length or a u32-big-endian-length-prefixed string.
//
// Reader operates over an immutable byte slice with a mutable cursor and
// never allocates more than the configured field-size cap before a length
// prefix has been validated, so a hostile length value cannot be used to
// force a large allocation ahead of the bounds check.
package wire
