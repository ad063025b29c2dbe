package types

import "fmt"

// These are the codes of the errors callers are expected to distinguish.
const (
	DuplicateAttribute = "attributes.duplicate"
	AttributeNotFound  = "attributes.notFound"
	UnknownAttribute   = "params.unknownAttribute"
	InvalidEnumValue   = "coerce.invalidEnumValue"
)

// Error is a coded error with a bag of context.
type Error struct {
	Code    string
	Context map[string]any
}

func (err Error) Error() string {
	return fmt.Sprintf("%+v: %+v", err.Code, err.Context)
}

// Is matches any error with the same code, ignoring context, so code-only
// errors may serve as sentinels for errors.Is.
func (err Error) Is(target error) bool {
	other, ok := target.(Error)
	return ok && other.Code == err.Code
}

func NewError(code string, args ...any) Error {
	n := len(args)
	if n%2 != 0 {
		panic("Invalid error context args")
	}
	err := Error{Code: code, Context: make(map[string]any, n/2)}
	for i := 0; i < n; i += 2 {
		s, ok := args[i].(string)
		if !ok {
			panic("Invalid error context args")
		}
		err.Context[s] = args[i+1]
	}
	return err
}
