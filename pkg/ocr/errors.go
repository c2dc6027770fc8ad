package ocr

import "errors"

// ErrNoText is returned when the engine produced no usable text for an image.
var ErrNoText = errors.New("no text recognized")
