package flans

import (
	"strings"
	"unicode/utf8"
)

const (
	minNameLength        = 3
	minDescriptionLength = 10
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors carries every violated rule of a create request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, violation := range e {
		messages = append(messages, violation.Message)
	}
	return "invalid flan data: " + strings.Join(messages, ", ")
}

// Messages returns the violation messages in rule order.
func (e ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(e))
	for _, violation := range e {
		messages = append(messages, violation.Message)
	}
	return messages
}

// Fields maps each offending field to its first message, for form redisplay.
func (e ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(e))
	for _, violation := range e {
		if _, ok := fields[violation.Field]; !ok {
			fields[violation.Field] = violation.Message
		}
	}
	return fields
}

// Validate checks input against every rule and returns all violations together.
func Validate(input CreateInput) ValidationErrors {
	var errs ValidationErrors

	if utf8.RuneCountInString(input.Name) < minNameLength {
		errs = append(errs, ValidationError{Field: "name", Message: "Name must be at least 3 characters"})
	}
	if utf8.RuneCountInString(input.Description) < minDescriptionLength {
		errs = append(errs, ValidationError{Field: "description", Message: "Description must be at least 10 characters"})
	}
	if input.IsPremium && !input.Price.IsPositive() {
		errs = append(errs, ValidationError{Field: "price", Message: "Premium flans must have a positive price"})
	}
	if !input.Type.Valid() {
		errs = append(errs, ValidationError{Field: "flan_type", Message: "Invalid flan type"})
	}

	return errs
}
