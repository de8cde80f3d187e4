package service

import "errors"

var (
	ErrMissingHeaders = errors.New("report page has rows but no column headers")
	ErrShapeMismatch  = errors.New("header and value count mismatch")
	ErrTooManyPages   = errors.New("pagination exceeded the page limit")
)
