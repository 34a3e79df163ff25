package dialogue

import (
	"context"

	"github.com/caprica-im/caprica/pkg/lexicon"
	"github.com/caprica-im/caprica/pkg/model"
	"github.com/caprica-im/caprica/pkg/transcript"
	"github.com/caprica-im/caprica/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// EndReason explains why an auto-mode dialogue stopped.
type EndReason string

const (
	// EndReasonNone means the dialogue has not ended yet.
	EndReasonNone EndReason = ""
	// EndReasonCycle means a persona repeated a recent query verbatim.
	EndReasonCycle EndReason = "cycle"
	// EndReasonMaxTurns means the configured turn limit was reached.
	EndReasonMaxTurns EndReason = "max_turns"
	// EndReasonError means a turn failed (no match or no response).
	EndReasonError EndReason = "error"
)

const (
	defaultMaxTurns    = 50
	defaultCycleWindow = 10
)

// AutoInput contains parameters for creating an auto-mode session
type AutoInput struct {
	PersonaA string
	StoreA   *transcript.Store
	PersonaB string
	StoreB   *transcript.Store

	Scorer *lexicon.Scorer

	// Seed is the first query, fed into persona B's transcript as if persona
	// A had said it.
	Seed string

	// MaxTurns caps the dialogue length regardless of cycle detection.
	// Zero means the default (50).
	MaxTurns int

	// CycleWindow is how many of each persona's recent queries are checked
	// for verbatim repetition. Zero means the default (10).
	CycleWindow int
}

type autoSide struct {
	persona string
	store   *transcript.Store
	// recent holds the last CycleWindow query texts this side has asked.
	recent []string
}

// AutoSession alternates two personas' transcripts as each other's query
// source: the current speaker's last response becomes the query matched
// against the other persona's transcript. It yields a lazy, finite sequence
// of turns — finite because a verbatim query repetition within the cycle
// window or the turn cap ends it. An AutoSession is not restartable;
// construct a new one to run again.
type AutoSession struct {
	id      model.SessionID
	matcher *Matcher
	sides   [2]*autoSide

	asker       int // index into sides of whoever asks next
	query       string
	turns       int
	maxTurns    int
	cycleWindow int
	endReason   EndReason
}

// NewAuto creates an auto-mode session seeded with input.Seed, with persona A
// asking first.
func NewAuto(input AutoInput) (*AutoSession, error) {
	if input.StoreA == nil || input.StoreB == nil {
		return nil, goerr.New("both transcript stores are required")
	}
	if input.Scorer == nil {
		return nil, goerr.New("scorer is required")
	}
	if input.Seed == "" {
		return nil, goerr.New("seed query is required")
	}

	maxTurns := input.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	cycleWindow := input.CycleWindow
	if cycleWindow <= 0 {
		cycleWindow = defaultCycleWindow
	}

	return &AutoSession{
		id:      model.NewSessionID(),
		matcher: NewMatcher(input.Scorer),
		sides: [2]*autoSide{
			{persona: input.PersonaA, store: input.StoreA},
			{persona: input.PersonaB, store: input.StoreB},
		},
		asker:       0,
		query:       input.Seed,
		maxTurns:    maxTurns,
		cycleWindow: cycleWindow,
	}, nil
}

// ID returns the session identifier.
func (s *AutoSession) ID() model.SessionID {
	return s.id
}

// EndReason returns why the dialogue ended, or EndReasonNone while it is
// still running.
func (s *AutoSession) EndReason() EndReason {
	return s.endReason
}

// Next produces the next turn of the dialogue. It returns (nil, nil) once the
// session has ended; EndReason tells why. A failed turn (model.ErrNoMatch,
// model.ErrNoResponse) ends the session and returns the error.
func (s *AutoSession) Next(ctx context.Context) (*model.ConversationTurn, error) {
	if s.endReason != EndReasonNone {
		return nil, nil
	}

	if s.turns >= s.maxTurns {
		s.endReason = EndReasonMaxTurns
		return nil, nil
	}

	side := s.sides[s.asker]
	if side.sawRecently(s.query) {
		logging.From(ctx).Info("conversational loop detected",
			"session", s.id,
			"persona", side.persona,
			"query", s.query,
		)
		s.endReason = EndReasonCycle
		return nil, nil
	}
	side.remember(s.query, s.cycleWindow)

	// The asker's query runs against the other persona's transcript.
	target := s.sides[1-s.asker]

	match, err := s.matcher.FindBest(ctx, target.store, transcript.Tokenize(s.query))
	if err != nil {
		s.endReason = EndReasonError
		return nil, err
	}

	response, err := FindResponse(target.store, match.Index)
	if err != nil {
		s.endReason = EndReasonError
		return nil, err
	}

	turn := &model.ConversationTurn{
		Speaker:      target.persona,
		Query:        s.query,
		MatchedIndex: match.Index,
		Response:     response.Text,
	}

	// The response becomes the next query and turn ownership flips.
	s.query = response.Text
	s.asker = 1 - s.asker
	s.turns++

	return turn, nil
}

func (a *autoSide) sawRecently(query string) bool {
	for _, q := range a.recent {
		if q == query {
			return true
		}
	}
	return false
}

func (a *autoSide) remember(query string, window int) {
	a.recent = append(a.recent, query)
	if len(a.recent) > window {
		a.recent = a.recent[len(a.recent)-window:]
	}
}
