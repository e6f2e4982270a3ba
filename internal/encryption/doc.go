// Package encryption implements AES block modes (CBC with an implicit zero IV, and ECB),
// PKCS#7 padding, key generation and concurrent file processing.
//
// The CBC driver chains blocks by hand on top of a cipher.Block; it is meant for
// studying the mode, not for protecting data. Padding is stripped without validation
// unless strict unpadding is requested.
package encryption
