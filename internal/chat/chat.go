// Package chat holds the seeded conversation store and the transport
// stub. Messages are hardcoded mock data; nothing is persisted or sent.
package chat

import "strings"

// Message is one chat bubble.
type Message struct {
	ID        string
	SenderID  string
	Text      string
	Timestamp string // display string
	Read      bool
}

// Conversation pairs the current user with one peer, optionally in the
// context of a product.
type Conversation struct {
	PeerID    string
	PeerName  string
	ProductID string // optional product context
	Online    bool
	Unread    int
	Messages  []Message
}

// LastMessage returns the newest message text, or "".
func (c Conversation) LastMessage() string {
	if len(c.Messages) == 0 {
		return ""
	}
	return c.Messages[len(c.Messages)-1].Text
}

// Transport delivers an outgoing message. The core only needs this one
// contract; real delivery is an external collaborator.
type Transport interface {
	Send(conversationID, text string) error
}

// NopTransport is the wired transport: send succeeds and the message
// goes nowhere. The original behavior clears the composer without a
// send, so the no-op is explicit here rather than buried in a handler.
type NopTransport struct{}

func (NopTransport) Send(conversationID, text string) error { return nil }

// Store is the in-memory conversation list for the signed-in user.
type Store struct {
	conversations []Conversation
	transport     Transport
}

// NewStore builds a store over the given conversations. A nil transport
// falls back to the no-op.
func NewStore(conversations []Conversation, transport Transport) *Store {
	if transport == nil {
		transport = NopTransport{}
	}
	return &Store{conversations: conversations, transport: transport}
}

// NewSeededStore returns the store with the mock conversation history.
func NewSeededStore() *Store {
	return NewStore(SeedConversations(), NopTransport{})
}

// Conversations returns the conversation list in display order.
func (s *Store) Conversations() []Conversation { return s.conversations }

// ByPeer returns the conversation with the given peer, or nil.
func (s *Store) ByPeer(peerID string) *Conversation {
	for i := range s.conversations {
		if s.conversations[i].PeerID == peerID {
			return &s.conversations[i]
		}
	}
	return nil
}

// Open marks a conversation read and returns it; nil when the peer has
// no conversation (a renderable empty state).
func (s *Store) Open(peerID string) *Conversation {
	c := s.ByPeer(peerID)
	if c != nil {
		c.Unread = 0
	}
	return c
}

// Send pushes text through the transport. Blank input is dropped before
// it reaches the transport, matching the composer's trim-then-clear
// behavior.
func (s *Store) Send(peerID, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.transport.Send(peerID, text)
}

// SeedConversations returns the hardcoded conversation history shown to
// any signed-in user.
func SeedConversations() []Conversation {
	return []Conversation{
		{
			PeerID: "2", PeerName: "Sarah Johnson", ProductID: "1",
			Online: true, Unread: 2,
			Messages: []Message{
				{ID: "m1", SenderID: "2", Text: "Hi, is this iPhone still available?", Timestamp: "10:30 AM"},
				{ID: "m2", SenderID: "1", Text: "Yes! It is available. Would you like to see it?", Timestamp: "10:35 AM", Read: true},
				{ID: "m3", SenderID: "2", Text: "Sure! Can we meet this evening?", Timestamp: "10:40 AM"},
			},
		},
		{
			PeerID: "3", PeerName: "Mike Chen", ProductID: "3",
			Online: false, Unread: 0,
			Messages: []Message{
				{ID: "m4", SenderID: "3", Text: "Is the price negotiable?", Timestamp: "Yesterday"},
			},
		},
	}
}
