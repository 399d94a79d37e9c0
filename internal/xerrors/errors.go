// Package xerrors provides the structured error type used throughout the
// fdt module: a sentinel kind plus contextual detail, so callers can both
// errors.Is against a stable kind and read a human-readable diagnosis.
package xerrors

import "fmt"

// FDTError is a contextual error wrapping a sentinel kind.
type FDTError struct {
	Kind    error
	Context string
}

// Error implements the error interface.
func (e *FDTError) Error() string {
	if e.Context == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Context)
}

// Unwrap provides compatibility with errors.Is/errors.As.
func (e *FDTError) Unwrap() error {
	return e.Kind
}

// New builds a *FDTError for the given sentinel kind and context.
func New(kind error, context string) *FDTError {
	return &FDTError{Kind: kind, Context: context}
}

// Newf builds a *FDTError with a formatted context string.
func Newf(kind error, format string, args ...any) *FDTError {
	return &FDTError{Kind: kind, Context: fmt.Sprintf(format, args...)}
}
