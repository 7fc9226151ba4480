package browserlist

import "errors"

var (
	// ErrUnknownQuery is returned when a query matches no known form
	ErrUnknownQuery = errors.New("unknown browser query")

	// ErrUnknownBrowser is returned for a browser name absent from the dataset
	ErrUnknownBrowser = errors.New("unknown browser name")

	// ErrUnknownVersion is returned for a version the dataset does not contain
	ErrUnknownVersion = errors.New("unknown browser version")

	// ErrNegationFirst is returned when a query list starts with "not"
	ErrNegationFirst = errors.New("write a selecting query before a \"not\" query")

	// ErrDuplicateConfig is returned when one directory carries two config sources
	ErrDuplicateConfig = errors.New("duplicate browserslist config in one directory")

	// ErrInvalidConfig is returned when a config file cannot be parsed
	ErrInvalidConfig = errors.New("invalid browserslist config")
)
