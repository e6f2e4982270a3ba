package codec

import "errors"

// ErrUnknownFormat is returned when a format name is not one of hex, base64 or raw.
var ErrUnknownFormat = errors.New("unknown format")
