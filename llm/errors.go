package llm

import "errors"

// Errors returned by clients and the factory. Callers match them with
// errors.Is; the wrapped message carries the provider-reported detail.
var (
	// ErrUnsupportedProvider is returned when a descriptor names a backend
	// no integration exists for; this is a configuration bug, not a
	// transient failure.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrGenerationTimeout is returned when the network call exceeds the
	// configured bound.
	ErrGenerationTimeout = errors.New("generation timed out")

	// ErrGenerationFailed is returned for non-success responses and for
	// response bodies that cannot be parsed.
	ErrGenerationFailed = errors.New("generation failed")
)
