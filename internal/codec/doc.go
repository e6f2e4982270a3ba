// Package codec converts between raw bytes and their hexadecimal or base64 text form.
//
// Decoders skip ASCII whitespace and control characters so that wrapped input
// (one chunk per line) can be decoded as a whole.
package codec
