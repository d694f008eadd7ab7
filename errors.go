package guid

import "errors"

var (
	// ErrInvalidGuid indicates that a string is not a well-formed GUID
	ErrInvalidGuid = errors.New("guid: invalid GUID")

	// ErrInvalidLength indicates that the GUID byte slice has incorrect length
	ErrInvalidLength = errors.New("guid: invalid GUID length (expected 12 bytes)")
)
