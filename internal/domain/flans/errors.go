package flans

import "errors"

var (
	ErrFlanNotFound  = errors.New("flan not found")
	ErrNegativePrice = errors.New("price must not be negative")
)
