package dal

import "errors"

var (
	ErrEmptyResponse = errors.New("reporting response contains no reports")
)
