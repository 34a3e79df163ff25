package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTranscriptNotFound is returned when a transcript path does not exist.
	ErrTranscriptNotFound = goerr.New("transcript not found")

	// ErrMalformedRecord is returned when a transcript record cannot be split
	// into the four required fields. Load aborts entirely on the first
	// malformed record: skipping it would shift line indices and corrupt the
	// response walk.
	ErrMalformedRecord = goerr.New("malformed transcript record")

	// ErrNoMatch is returned when a query is run against an empty transcript.
	ErrNoMatch = goerr.New("no matchable line in transcript")

	// ErrNoResponse is returned when a matched line has no differing-author
	// successor, typically because the match landed on the last line.
	ErrNoResponse = goerr.New("no response after matched line")

	// ErrLexiconLookup indicates the external synonym source failed. It is
	// recovered inside the Expander (fallback to the bare token) and never
	// aborts a session.
	ErrLexiconLookup = goerr.New("lexicon lookup failed")
)
