// Package cryptanalysis breaks single-byte and repeating-key XOR ciphers and
// fingerprints ECB-mode ciphertexts.
//
// Everything in this package is pure and CPU-bound: functions take byte slices,
// never retain them, and never touch files or the network.
package cryptanalysis
