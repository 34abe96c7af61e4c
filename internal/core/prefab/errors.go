package prefab

import "errors"

var (
	ErrNotObject          = errors.New("prefab is not a JSON object")
	ErrNotArray           = errors.New("scene is not a JSON array")
	ErrDuplicateComponent = errors.New("component already present in prefab")
	ErrSkipped            = errors.New("prefab entry skipped")
)
