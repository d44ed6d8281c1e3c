package common

import (
	"errors"
)

var ErrInvalidUrl = errors.New("invalid or missing url")
var ErrMissingData = errors.New("missing data parameter")
var ErrMediaTooLarge = errors.New("media too large")
var ErrHostNotFound = errors.New("host not found")
var ErrHostNotAllowed = errors.New("host not allowed")
var ErrTooManyRedirects = errors.New("too many redirects")
