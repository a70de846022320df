package domain

import "errors"

var (
	// ErrNotFound means a referenced menu item id does not exist.
	ErrNotFound = errors.New("menu item not found")

	// ErrConflict means a uniqueness constraint collision or a stale
	// concurrent write was detected.
	ErrConflict = errors.New("menu item conflict")

	// ErrTreeMismatch means a bulk reorder tree referenced ids that do not
	// line up with the partition's contents.
	ErrTreeMismatch = errors.New("reorder tree does not match partition contents")
)
