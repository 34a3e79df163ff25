package model

import "github.com/google/uuid"

type SessionID string

// NewSessionID generates a new unique SessionID
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// MatchResult identifies the best-scoring transcript line for a query.
// Score is always within [0, 1].
type MatchResult struct {
	Index int
	Score float64
}

// ConversationTurn records one completed query/response cycle. The session
// keeps these as its running history; auto mode also reads the last turn to
// seed the next query.
type ConversationTurn struct {
	Speaker      string
	Query        string
	MatchedIndex int
	Response     string
}
