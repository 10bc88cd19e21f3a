package submission

import "errors"

// Sentinel errors returned by [Parse]. Wrap sites add context; callers
// discriminate with [errors.Is].
var (
	// ErrMalformedXML is returned when the input document cannot be read:
	// syntax errors, unclosed elements, or a failed round-trip validation.
	ErrMalformedXML = errors.New("malformed xml document")

	// ErrNoRootElement is returned when the document contains no root
	// element after cleaning.
	ErrNoRootElement = errors.New("no root element")
)
