package patch

import "errors"

var (
	// ErrPayloadTooLarge means the hex input exceeds MaxHexDigits.
	ErrPayloadTooLarge = errors.New("patch: hex payload too large")

	// ErrSourceAccess means the source file could not be stat'd or read.
	ErrSourceAccess = errors.New("patch: cannot access source file")

	// ErrDestinationWrite means the destination could not be created,
	// written, or closed.
	ErrDestinationWrite = errors.New("patch: cannot write destination file")

	// ErrTimestampApply means the destination was written but its
	// timestamps could not be set.
	ErrTimestampApply = errors.New("patch: cannot set destination timestamps")
)
