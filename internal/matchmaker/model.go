package matchmaker

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Participant is one connected, logged-in user. Created on a valid
// user_login, destroyed on disconnect. SessionID is empty while unmatched;
// a participant never holds more than one session at a time.
type Participant struct {
	ID        string // connection identifier, stable for the connection lifetime
	Name      string
	Age       int
	Country   string // flag emoji resolved at login
	Interests []string
	Origin    string // network origin, for ban/report records
	SessionID string
}

// Session is an active two-party pairing. Its identifier is a random token,
// independent of the members' identifiers.
type Session struct {
	ID        string
	A, B      string // member connection ids
	CreatedAt time.Time
}

// Other returns the counterpart of id within the session.
func (s *Session) Other(id string) (string, bool) {
	switch id {
	case s.A:
		return s.B, true
	case s.B:
		return s.A, true
	}
	return "", false
}

// FlexInt accepts a JSON number or numeric string. Clients send age either
// way; anything unparsable coerces to zero, which fails login validation.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// LoginRequest is the user_login payload.
type LoginRequest struct {
	Name      string   `json:"name"`
	Age       FlexInt  `json:"age"`
	Country   string   `json:"country,omitempty"`
	Interests []string `json:"interests"`
}

// PartnerProfile is the public slice of a participant disclosed on match.
type PartnerProfile struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ChatStart is sent individually to each new session member with the
// counterpart's profile.
type ChatStart struct {
	SessionID string         `json:"sessionId"`
	Partner   PartnerProfile `json:"partner"`
}

// ReceiveMessage is the relayed chat payload. Type is text, image or audio.
type ReceiveMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

// MessagePayload covers send_message, send_image and send_voice bodies. The
// client's room field is untrusted and deliberately not modeled; routing is
// resolved from the sender's own session.
type MessagePayload struct {
	Message string `json:"message,omitempty"`
	Image   string `json:"image,omitempty"`
	Buffer  string `json:"buffer,omitempty"`
}

// DecodePayload unmarshals an event body, reporting whether it was usable.
func DecodePayload(data json.RawMessage, v interface{}) bool {
	if len(data) == 0 {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
