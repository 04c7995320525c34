package backlog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DownloadTTL is how long an unfetched download slot is kept.
const DownloadTTL = 2 * time.Minute

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// Sessions owns every live Session. Sessions idle for longer than the TTL
// are dropped by Sweep.
type Sessions struct {
	ttl time.Duration
	log *slog.Logger
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewSessions creates a session manager. A nil logger uses slog.Default().
func NewSessions(ttl time.Duration, log *slog.Logger) *Sessions {
	if log == nil {
		log = slog.Default()
	}
	return &Sessions{
		ttl:      ttl,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// New creates a session for a fresh page load.
func (m *Sessions) New() *Session {
	s := newSession(uuid.NewString(), m.log, m.now)

	m.mu.Lock()
	m.sessions[s.id] = &sessionEntry{session: s, lastSeen: m.now()}
	m.mu.Unlock()

	m.log.Debug("session created", "session", s.id)
	return s
}

// Get returns the session with id and marks it as seen.
func (m *Sessions) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionExpired
	}
	e.lastSeen = m.now()
	return e.session, nil
}

// Len returns the number of live sessions.
func (m *Sessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops idle sessions and stale download slots. It returns the number
// of sessions dropped.
func (m *Sessions) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := 0
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.ttl {
			delete(m.sessions, id)
			dropped++
			continue
		}
		if n := e.session.releaseDownloads(now.Add(-DownloadTTL)); n > 0 {
			m.log.Debug("released stale downloads", "session", id, "count", n)
		}
	}
	return dropped
}

// Run sweeps every interval until ctx is done.
func (m *Sessions) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 {
				m.log.Info("expired sessions", "count", n, "live", m.Len())
			}
		}
	}
}
