package dialogue

import (
	"context"

	"github.com/caprica-im/caprica/pkg/lexicon"
	"github.com/caprica-im/caprica/pkg/model"
	"github.com/caprica-im/caprica/pkg/transcript"
	"github.com/caprica-im/caprica/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Session is an interactive conversation with one persona's transcript. Each
// Send drives one match/walk cycle; the session never ends on its own —
// termination is the caller's concern (end of input).
type Session struct {
	id      model.SessionID
	persona string
	store   *transcript.Store
	matcher *Matcher

	history []*model.ConversationTurn
}

// NewInput contains parameters for creating an interactive session
type NewInput struct {
	Persona string
	Store   *transcript.Store
	Scorer  *lexicon.Scorer
}

// New creates an interactive session bound to one transcript store.
func New(input NewInput) (*Session, error) {
	if input.Store == nil {
		return nil, goerr.New("transcript store is required")
	}
	if input.Scorer == nil {
		return nil, goerr.New("scorer is required")
	}

	return &Session{
		id:      model.NewSessionID(),
		persona: input.Persona,
		store:   input.Store,
		matcher: NewMatcher(input.Scorer),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() model.SessionID {
	return s.id
}

// Persona returns the persona name this session was bound to.
func (s *Session) Persona() string {
	return s.persona
}

// History returns the turns completed so far, oldest first. The returned
// slice is the session's own; callers must not modify it.
func (s *Session) History() []*model.ConversationTurn {
	return s.history
}

// Send runs one query/response cycle: match the text against the transcript,
// walk to the reply, record the turn. model.ErrNoMatch and
// model.ErrNoResponse propagate to the caller, which decides whether to end
// the session or just report and continue.
func (s *Session) Send(ctx context.Context, text string) (*model.ConversationTurn, error) {
	queryTokens := transcript.Tokenize(text)

	match, err := s.matcher.FindBest(ctx, s.store, queryTokens)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("matched query",
		"session", s.id,
		"query", text,
		"index", match.Index,
		"score", match.Score,
	)

	response, err := FindResponse(s.store, match.Index)
	if err != nil {
		return nil, err
	}

	turn := &model.ConversationTurn{
		Speaker:      response.Author,
		Query:        text,
		MatchedIndex: match.Index,
		Response:     response.Text,
	}
	s.history = append(s.history, turn)

	return turn, nil
}
