package dlist

import "errors"

var (
	// ErrEmptyContainer indicates an element access or removal on an empty list.
	ErrEmptyContainer = errors.New("dlist: container is empty")

	// ErrInvalidPosition indicates a position that does not belong to the list,
	// points to a removed element, or cannot be dereferenced or stepped.
	ErrInvalidPosition = errors.New("dlist: invalid position")
)
