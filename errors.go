package rbtree

import "errors"

// ErrInvalidTree signals a structural invariant violation found by Check.
var ErrInvalidTree = errors.New("rbtree: invalid tree structure")
