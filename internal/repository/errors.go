package repository

import "fmt"

// DataAccessError is returned for any failure while fetching from the
// relational store. Err holds the driver or decode error.
type DataAccessError struct {
	Source string
	Err    error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Source, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
