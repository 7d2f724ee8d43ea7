package domain

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session is one editing session. It lives only in memory and is discarded
// when it expires or the process ends.
type Session struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`

	// Single-flight guards for the two suspending operations. Everything
	// else is synchronous, so these are the only busy flags the session
	// needs.
	generating atomic.Bool
	exporting  atomic.Bool
}

func NewSession() *Session {
	now := time.Now()
	return &Session{ID: uuid.New(), CreatedAt: now, LastSeen: now}
}

// TryBeginGenerate claims the generate busy flag. It returns false when a
// generation is already in flight.
func (s *Session) TryBeginGenerate() bool { return s.generating.CompareAndSwap(false, true) }

func (s *Session) EndGenerate() { s.generating.Store(false) }

// TryBeginExport claims the export busy flag.
func (s *Session) TryBeginExport() bool { return s.exporting.CompareAndSwap(false, true) }

func (s *Session) EndExport() { s.exporting.Store(false) }

func (s *Session) Touch() { s.LastSeen = time.Now() }
