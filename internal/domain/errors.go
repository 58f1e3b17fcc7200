package domain

import "errors"

var ErrNotFound = errors.New("not found")

// StoreError is a failure reported by the record store. Error returns the
// store's own message so it can be shown to callers unchanged.
type StoreError struct {
	Op      string
	Message string // driver-reported message; falls back to Err.Error()
	Err     error
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err came from the record store.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
