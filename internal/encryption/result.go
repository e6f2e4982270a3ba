package encryption

// Result is the outcome of encrypting or decrypting one file.
type Result struct {
	Input  string
	Output string

	// InputSize and OutputSize are in bytes. Ciphertext sizes include the text encoding.
	InputSize  int64
	OutputSize int64

	Err error
}

// Failed reports whether the file could not be processed.
func (r Result) Failed() bool {
	return r.Err != nil
}
