package transcript

import "errors"

var (
	// ErrParserMissing indicates a site hook required by the operation was
	// not injected. Wiring, not data: the caller forgot to configure a
	// ShowParser, EpisodeParser, or LineParser.
	ErrParserMissing = errors.New("site parser not configured")

	// ErrMalformed indicates persisted transcript data could not be decoded.
	ErrMalformed = errors.New("malformed transcript data")
)
