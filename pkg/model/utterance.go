package model

// Utterance is one transcript line. Its position in the owning store's
// sequence (Index) is its identity and never changes after load.
type Utterance struct {
	ChatID    string
	Timestamp string
	Author    string
	Text      string

	// Tokens is the normalized token sequence of Text, computed once at load
	// time. Consumers must treat it as read-only.
	Tokens []string

	Index int
}
