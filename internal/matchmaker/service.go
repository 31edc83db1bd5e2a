package matchmaker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"DriftChat/internal/geo"
	"DriftChat/internal/moderation"
	"DriftChat/internal/utils"
	ws "DriftChat/internal/websocket"

	"github.com/google/uuid"
)

// Notifier delivers an event to a single connection. The websocket Hub
// satisfies it; tests use a capture fake.
type Notifier interface {
	SendToClient(id string, msg ws.OutgoingMessage)
}

// Reporter records a report against an origin. Returns true when the report
// tipped the origin over the ban threshold.
type Reporter interface {
	Report(ctx context.Context, origin string) bool
}

// Service owns all matchmaking state: the participant registry, the waiting
// pool and the session table. Every mutation happens under one lock, so each
// inbound event is atomic with respect to every other participant's events.
// The only race worth naming is double-teardown (skip racing a disconnect),
// which destroySession resolves by treating "no session" as a no-op.
type Service struct {
	mu           sync.Mutex // coarse lock over all matchmaking state
	participants map[string]*Participant
	pool         *Pool
	sessions     map[string]*Session

	notifier Notifier
	filter   *moderation.Filter
	reporter Reporter
}

func NewService(notifier Notifier, filter *moderation.Filter, reporter Reporter) *Service {
	return &Service{
		participants: make(map[string]*Participant),
		pool:         NewPool(),
		sessions:     make(map[string]*Session),
		notifier:     notifier,
		filter:       filter,
		reporter:     reporter,
	}
}

// Login materializes the participant profile and enters matchmaking.
// Missing name or age is silently ignored, mirroring the wire contract.
// A participant already waiting or already in a session is left alone.
func (s *Service) Login(id, origin string, req LoginRequest) {
	if req.Name == "" || req.Age == 0 {
		return
	}

	country := geo.FlagForCountry(req.Country)
	if req.Country == "" {
		country = geo.Flag(origin)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.participants[id]; ok {
		if p.SessionID != "" || s.pool.Contains(id) {
			return
		}
	}

	p := &Participant{
		ID:        id,
		Name:      req.Name,
		Age:       int(req.Age),
		Country:   country,
		Interests: req.Interests,
		Origin:    origin,
	}
	s.participants[id] = p
	s.requestMatch(p)
}

// requestMatch pairs p with a waiting candidate or enqueues it. Two passes:
// first waiter sharing an interest, then first waiter of any kind. Callers
// must guarantee p is neither waiting nor in a session. Lock held.
func (s *Service) requestMatch(p *Participant) {
	var candidate *Participant
	if len(p.Interests) > 0 {
		candidate = s.pool.Find(func(c *Participant) bool {
			return c.ID != p.ID && overlap(c.Interests, p.Interests)
		})
	}
	if candidate == nil {
		candidate = s.pool.Find(func(c *Participant) bool {
			return c.ID != p.ID
		})
	}

	if candidate != nil {
		s.pool.Remove(candidate.ID)
		s.createSession(p, candidate)
		return
	}

	s.pool.Add(p)
	s.notifier.SendToClient(p.ID, ws.OutgoingMessage{
		Event: ws.EventStatus,
		Data:  "Searching for partner...",
	})
}

// createSession pairs a and b atomically: both gain the session reference in
// the same step and each side learns the other's public profile. Lock held.
func (s *Service) createSession(a, b *Participant) {
	session := &Session{
		ID:        uuid.NewString(),
		A:         a.ID,
		B:         b.ID,
		CreatedAt: time.Now(),
	}
	s.sessions[session.ID] = session
	a.SessionID = session.ID
	b.SessionID = session.ID

	s.notifier.SendToClient(a.ID, ws.OutgoingMessage{
		Event: ws.EventChatStart,
		Data:  ChatStart{SessionID: session.ID, Partner: PartnerProfile{Name: b.Name, Country: b.Country}},
	})
	s.notifier.SendToClient(b.ID, ws.OutgoingMessage{
		Event: ws.EventChatStart,
		Data:  ChatStart{SessionID: session.ID, Partner: PartnerProfile{Name: a.Name, Country: a.Country}},
	})

	s.notifier.SendToClient(a.ID, ws.OutgoingMessage{
		Event: ws.EventSystemMessage,
		Data:  fmt.Sprintf("Matched: %s %s (%d)", b.Country, b.Name, b.Age),
	})
	s.notifier.SendToClient(b.ID, ws.OutgoingMessage{
		Event: ws.EventSystemMessage,
		Data:  fmt.Sprintf("Matched: %s %s (%d)", a.Country, a.Name, a.Age),
	})

	utils.Info.Printf("session %s: %s <-> %s", session.ID, a.ID, b.ID)
}

// destroySession tears down p's session, notifying the partner if it is
// still connected. Idempotent: a participant with no session is a no-op, so
// skip racing a disconnect resolves to a single partner_left. Lock held.
func (s *Service) destroySession(p *Participant) {
	if p.SessionID == "" {
		return
	}
	sid := p.SessionID
	p.SessionID = ""

	session, ok := s.sessions[sid]
	if !ok {
		return
	}
	delete(s.sessions, sid)

	otherID, _ := session.Other(p.ID)
	if other, ok := s.participants[otherID]; ok {
		other.SessionID = ""
		s.notifier.SendToClient(other.ID, ws.OutgoingMessage{Event: ws.EventPartnerLeft})
	}
}

// cleanup removes p from the waiting pool (no-op if absent) and tears down
// its session. Lock held.
func (s *Service) cleanup(p *Participant) {
	s.pool.Remove(p.ID)
	s.destroySession(p)
}

// Skip tears down the current session and immediately re-enters matchmaking.
// The departed partner is only notified, never re-queued.
func (s *Service) Skip(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok {
		return
	}
	s.cleanup(p)
	s.requestMatch(p)
}

// Leave tears down the session; the participant stays connected but idle
// until it logs in again or drops.
func (s *Service) Leave(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.participants[id]; ok {
		s.cleanup(p)
	}
}

// Disconnect removes the participant entirely.
func (s *Service) Disconnect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok {
		return
	}
	s.cleanup(p)
	delete(s.participants, id)
}

// Report records a report against the current partner's origin and acks the
// reporter. The session is deliberately left running.
func (s *Service) Report(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok || p.SessionID == "" {
		return
	}
	session, ok := s.sessions[p.SessionID]
	if !ok {
		return
	}
	otherID, _ := session.Other(p.ID)
	if other, ok := s.participants[otherID]; ok && s.reporter != nil {
		if s.reporter.Report(context.Background(), other.Origin) {
			utils.Info.Printf("origin %s banned after repeated reports", other.Origin)
		}
	}
	s.notifier.SendToClient(p.ID, ws.OutgoingMessage{
		Event: ws.EventSystemMessage,
		Data:  "Report received.",
	})
}

// SendText relays a text message to the session partner, censored by the
// profanity filter when one is configured (fail-open otherwise).
func (s *Service) SendText(id, text string) {
	s.relay(id, ws.OutgoingMessage{
		Event: ws.EventReceive,
		Data:  ReceiveMessage{Type: "text", Content: s.filter.Clean(text), Time: clock()},
	})
}

// SendImage relays an image payload unchanged.
func (s *Service) SendImage(id, image string) {
	s.relay(id, ws.OutgoingMessage{
		Event: ws.EventReceive,
		Data:  ReceiveMessage{Type: "image", Content: image, Time: clock()},
	})
}

// SendVoice relays an audio payload unchanged.
func (s *Service) SendVoice(id, buffer string) {
	s.relay(id, ws.OutgoingMessage{
		Event: ws.EventReceive,
		Data:  ReceiveMessage{Type: "audio", Content: buffer, Time: clock()},
	})
}

func (s *Service) Typing(id string) {
	s.relay(id, ws.OutgoingMessage{Event: ws.EventPartnerTyping})
}

func (s *Service) StopTyping(id string) {
	s.relay(id, ws.OutgoingMessage{Event: ws.EventPartnerStop})
}

// relay delivers msg to the other member of the sender's session. A sender
// with no session is a stale client event and is dropped silently.
func (s *Service) relay(id string, msg ws.OutgoingMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok || p.SessionID == "" {
		return
	}
	session, ok := s.sessions[p.SessionID]
	if !ok {
		return
	}
	otherID, ok := session.Other(p.ID)
	if !ok {
		return
	}
	s.notifier.SendToClient(otherID, msg)
}

// IsWaiting reports whether id is in the waiting pool.
func (s *Service) IsWaiting(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Contains(id)
}

// SessionOf returns id's current session identifier, if any.
func (s *Service) SessionOf(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok || p.SessionID == "" {
		return "", false
	}
	return p.SessionID, true
}

func overlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func clock() string {
	return time.Now().Format("15:04:05")
}
