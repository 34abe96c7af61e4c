package assets

import "errors"

var (
	ErrNotFound        = errors.New("asset not found")
	ErrUnsupportedKind = errors.New("unsupported asset kind")
	ErrLoadFailed      = errors.New("asset load failed")
	ErrPersist         = errors.New("persist asset index")
)
