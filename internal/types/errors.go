package types

import "fmt"

// InputError indicates that caller-supplied input failed the request gate
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s - %s", e.Field, e.Message)
}
