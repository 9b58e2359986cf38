package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError via errors.Is
var ErrNotFound = errors.New("not found")

// ErrEmptyCart is returned when an order is submitted before anything was added
var ErrEmptyCart = errors.New("cart is empty")

// NotFoundError reports a catalog reference that does not resolve
type NotFoundError struct {
	Kind string // "menu item" or "modifier"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// Is lets callers test with errors.Is(err, ErrNotFound)
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
