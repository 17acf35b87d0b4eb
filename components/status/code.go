package status

import "errors"

var (
	// StatusNoData indicates that the requested data doesn't exist.
	StatusNoData = errors.New("no data")

	// StatusInvalidArg indicates that an operation was called with an invalid argument.
	StatusInvalidArg = errors.New("invalid argument")
)
