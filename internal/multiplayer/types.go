// Package multiplayer provides the identifiers that tie play sessions to
// matches. Every match is currently a solo match.
package multiplayer

import "github.com/google/uuid"

// SessionID uniquely identifies a player's session (a local terminal or an SSH connection).
type SessionID string

// MatchID uniquely identifies a game match.
type MatchID string

// NewSessionID returns a fresh random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// NewMatchID returns a fresh random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// Short returns the first 8 characters of the id, for logs.
func (id SessionID) Short() string {
	return short(string(id))
}

// Short returns the first 8 characters of the id, for logs.
func (id MatchID) Short() string {
	return short(string(id))
}

func short(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is one locally driven agent.
	MatchModeSolo MatchMode = iota
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	default:
		return "Unknown"
	}
}

// Match records which sessions take part in a round of a game variant.
type Match struct {
	id     MatchID
	mode   MatchMode
	gameID string

	sessions []SessionID
}

// NewMatch creates a match with a fresh id.
func NewMatch(gameID string, mode MatchMode, sessions ...SessionID) *Match {
	return &Match{
		id:       NewMatchID(),
		mode:     mode,
		gameID:   gameID,
		sessions: sessions,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// GameID returns the game variant being played.
func (m *Match) GameID() string {
	return m.gameID
}

// Sessions returns a copy of the participating session ids.
func (m *Match) Sessions() []SessionID {
	return append([]SessionID(nil), m.sessions...)
}
