package services

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset marks a retrieval that nominally succeeded but returned zero
// records. It is distinct from a RetrievalError so callers can tell an empty
// feed apart from a transport failure.
var ErrEmptyDataset = errors.New("empty dataset")

type RetrievalError struct {
	Dataset string
	Err     error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieve %s: %v", e.Dataset, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
