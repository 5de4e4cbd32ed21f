package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrFetchFailed    = errors.New("catalog source failure")
	ErrFetchTimeout   = errors.New("catalog source timed out")
)
