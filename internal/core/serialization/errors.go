package serialization

import "errors"

var (
	ErrUnknownTag   = errors.New("unknown component type")
	ErrDuplicateTag = errors.New("component type already registered")
	ErrTagMismatch  = errors.New("component does not match its type tag")
)
