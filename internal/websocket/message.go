package websocket

import "encoding/json"

// Client → server events.
const (
	EventLogin    = "user_login"
	EventMessage  = "send_message"
	EventImage    = "send_image"
	EventVoice    = "send_voice"
	EventTyping   = "typing"
	EventStopType = "stop_typing"
	EventSkip     = "skip_partner"
	EventLeave    = "leave_chat"
	EventReport   = "report_partner"
)

// Server → client events.
const (
	EventOnlineCount   = "online_count"
	EventChatStart     = "chat_start"
	EventSystemMessage = "system_message"
	EventStatus        = "status"
	EventReceive       = "receive_message"
	EventPartnerTyping = "partner_typing"
	EventPartnerStop   = "partner_stop_typing"
	EventPartnerLeft   = "partner_left"
	EventBanned        = "banned"
)

type OutgoingMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type IncomingMessage struct {
	From  string          `json:"from"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}
