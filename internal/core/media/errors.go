package media

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported media format")
	ErrForeignHandle     = errors.New("handle was not issued by this loader")
)
