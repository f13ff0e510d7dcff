package sender

import "fmt"

// Category classifies why a preview or send attempt failed.
type Category string

const (
	CategoryFetch      Category = "fetch"
	CategoryCompose    Category = "compose"
	CategorySubmit     Category = "submit"
	CategoryValidation Category = "validation"
)

// Error carries a failure category and the underlying error text shown to
// the user.
type Error struct {
	Category Category
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(cat Category, err error) error {
	return &Error{Category: cat, Err: err}
}

func failf(cat Category, format string, args ...interface{}) error {
	return &Error{Category: cat, Err: fmt.Errorf(format, args...)}
}
