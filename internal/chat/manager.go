package chat

import (
	"DriftChat/internal/matchmaker"
	"DriftChat/internal/utils"
	"DriftChat/internal/websocket"
)

// Manager binds the connection lifecycle to the matchmaker: it translates
// raw hub events into service calls and looks up each sender's origin for
// login and report handling. Routing never trusts client-supplied session
// or room identifiers.
type Manager struct {
	hub     *websocket.Hub
	service *matchmaker.Service
}

func NewManager(hub *websocket.Hub, service *matchmaker.Service) *Manager {
	m := &Manager{hub: hub, service: service}
	hub.OnIncoming = m.HandleClientMessage
	hub.OnDisconnect = m.HandleDisconnect
	return m
}

// HandleClientMessage is the single entry point for client events
// (from Hub.incoming). Malformed payloads are dropped silently.
func (m *Manager) HandleClientMessage(msg websocket.IncomingMessage) {
	switch msg.Event {

	case websocket.EventLogin:
		var req matchmaker.LoginRequest
		if !matchmaker.DecodePayload(msg.Data, &req) {
			return
		}
		m.service.Login(msg.From, m.originOf(msg.From), req)

	case websocket.EventMessage:
		var p matchmaker.MessagePayload
		if !matchmaker.DecodePayload(msg.Data, &p) {
			return
		}
		m.service.SendText(msg.From, p.Message)

	case websocket.EventImage:
		var p matchmaker.MessagePayload
		if !matchmaker.DecodePayload(msg.Data, &p) {
			return
		}
		m.service.SendImage(msg.From, p.Image)

	case websocket.EventVoice:
		var p matchmaker.MessagePayload
		if !matchmaker.DecodePayload(msg.Data, &p) {
			return
		}
		m.service.SendVoice(msg.From, p.Buffer)

	case websocket.EventTyping:
		m.service.Typing(msg.From)

	case websocket.EventStopType:
		m.service.StopTyping(msg.From)

	case websocket.EventSkip:
		m.service.Skip(msg.From)

	case websocket.EventLeave:
		m.service.Leave(msg.From)

	case websocket.EventReport:
		m.service.Report(msg.From)

	default:
		utils.Info.Printf("unknown event %q from %s", msg.Event, msg.From)
	}
}

// HandleDisconnect runs after the hub drops a connection.
func (m *Manager) HandleDisconnect(id string) {
	m.service.Disconnect(id)
}

func (m *Manager) originOf(id string) string {
	if c, ok := m.hub.ClientByID(id); ok {
		return c.Origin
	}
	return ""
}
