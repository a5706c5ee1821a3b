package param

import "fmt"

// ReferenceError reports a configuration reference that does not resolve:
// an unknown key alias, a matrix column with no rows, or a required path
// that is missing. Geometry cannot be computed without the reference, so
// callers abort the affected fixture.
type ReferenceError struct {
	Path   string // dotted configuration path, e.g. "key-aliases.back"
	Detail string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("configuration reference %s: %s", e.Path, e.Detail)
}

// refErrf builds a ReferenceError with a formatted detail message.
func refErrf(path, format string, args ...interface{}) *ReferenceError {
	return &ReferenceError{Path: path, Detail: fmt.Sprintf(format, args...)}
}
