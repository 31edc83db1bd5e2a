package chat

import (
	"context"
	"encoding/json"
	"testing"

	"DriftChat/internal/matchmaker"
	"DriftChat/internal/moderation"
	"DriftChat/internal/websocket"

	"github.com/stretchr/testify/assert"
)

type noopReporter struct{}

func (noopReporter) Report(ctx context.Context, origin string) bool { return false }

func newManager() (*Manager, *matchmaker.Service) {
	hub := websocket.NewHub()
	svc := matchmaker.NewService(hub, moderation.NewFilter(), noopReporter{})
	return NewManager(hub, svc), svc
}

func event(from, name, body string) websocket.IncomingMessage {
	return websocket.IncomingMessage{From: from, Event: name, Data: json.RawMessage(body)}
}

func TestLoginEventEntersMatchmaking(t *testing.T) {
	m, svc := newManager()

	m.HandleClientMessage(event("c1", websocket.EventLogin, `{"name":"alice","age":"22","interests":["music"]}`))

	assert.True(t, svc.IsWaiting("c1"))
}

func TestLoginEventPairsTwoUsers(t *testing.T) {
	m, svc := newManager()

	m.HandleClientMessage(event("c1", websocket.EventLogin, `{"name":"alice","age":22}`))
	m.HandleClientMessage(event("c2", websocket.EventLogin, `{"name":"bob","age":25}`))

	s1, ok1 := svc.SessionOf("c1")
	s2, ok2 := svc.SessionOf("c2")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, s1, s2)
}

func TestMalformedLoginDropped(t *testing.T) {
	m, svc := newManager()

	m.HandleClientMessage(event("c1", websocket.EventLogin, `{broken`))
	m.HandleClientMessage(event("c2", websocket.EventLogin, `{"age":30}`))
	m.HandleClientMessage(websocket.IncomingMessage{From: "c3", Event: websocket.EventLogin})

	assert.False(t, svc.IsWaiting("c1"))
	assert.False(t, svc.IsWaiting("c2"))
	assert.False(t, svc.IsWaiting("c3"))
}

func TestSkipAndLeaveDispatch(t *testing.T) {
	m, svc := newManager()

	m.HandleClientMessage(event("c1", websocket.EventLogin, `{"name":"alice","age":22}`))
	m.HandleClientMessage(event("c2", websocket.EventLogin, `{"name":"bob","age":25}`))

	m.HandleClientMessage(websocket.IncomingMessage{From: "c1", Event: websocket.EventSkip})
	_, ok := svc.SessionOf("c2")
	assert.False(t, ok, "skipped partner loses the session")
	assert.True(t, svc.IsWaiting("c1"), "skipper re-enters the pool")

	m.HandleClientMessage(websocket.IncomingMessage{From: "c1", Event: websocket.EventLeave})
	assert.False(t, svc.IsWaiting("c1"), "leave clears the pool entry too")
}

func TestDisconnectDispatch(t *testing.T) {
	m, svc := newManager()

	m.HandleClientMessage(event("c1", websocket.EventLogin, `{"name":"alice","age":22}`))
	m.HandleDisconnect("c1")

	assert.False(t, svc.IsWaiting("c1"))

	// Unknown ids are a no-op, not an error.
	assert.NotPanics(t, func() { m.HandleDisconnect("ghost") })
}

func TestUnknownEventIgnored(t *testing.T) {
	m, svc := newManager()
	assert.NotPanics(t, func() {
		m.HandleClientMessage(event("c1", "play_poker", `{}`))
	})
	assert.False(t, svc.IsWaiting("c1"))
}

func TestClientRoomFieldUntrusted(t *testing.T) {
	m, svc := newManager()

	m.HandleClientMessage(event("c1", websocket.EventLogin, `{"name":"alice","age":22}`))
	m.HandleClientMessage(event("c2", websocket.EventLogin, `{"name":"bob","age":25}`))
	m.HandleClientMessage(event("c3", websocket.EventLogin, `{"name":"carol","age":27}`))

	// c3 is waiting; a forged room field must not let it inject into the
	// c1/c2 session. Routing comes from the sender's own session only.
	m.HandleClientMessage(event("c3", websocket.EventMessage, `{"message":"hi","room":"forged"}`))

	s1, _ := svc.SessionOf("c1")
	s2, _ := svc.SessionOf("c2")
	assert.Equal(t, s1, s2)
	assert.True(t, svc.IsWaiting("c3"))
}
