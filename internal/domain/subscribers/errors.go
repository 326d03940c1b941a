package subscribers

import "errors"

var (
	ErrDuplicateSubscriber = errors.New("subscriber already exists")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrSubscriberNotFound  = errors.New("subscriber not found")
)
