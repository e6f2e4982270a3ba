package cryptanalysis

// Transpose groups the bytes of data by their offset within consecutive
// width-byte chunks: column i holds byte i of every chunk.
//
// A trailing partial chunk only feeds the columns it reaches. Empty input
// yields no columns, and input shorter than width yields len(data) columns.
func Transpose(data []byte, width int) [][]byte {
	if width < 1 || len(data) == 0 {
		return nil
	}

	columns := make([][]byte, min(width, len(data)))

	for i, b := range data {
		columns[i%width] = append(columns[i%width], b)
	}

	return columns
}
