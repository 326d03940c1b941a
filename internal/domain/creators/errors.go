package creators

import "errors"

var (
	ErrCreatorNotFound    = errors.New("creator not found")
	ErrInvalidCreatorType = errors.New("invalid creator type")
)
