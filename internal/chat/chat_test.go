package chat

import (
	"errors"
	"testing"
)

type recordingTransport struct {
	peer, text string
	calls      int
	err        error
}

func (r *recordingTransport) Send(conversationID, text string) error {
	r.calls++
	r.peer, r.text = conversationID, text
	return r.err
}

func TestOpenClearsUnread(t *testing.T) {
	s := NewSeededStore()
	c := s.Open("2")
	if c == nil {
		t.Fatalf("expected seeded conversation with peer 2")
	}
	if c.Unread != 0 {
		t.Fatalf("open must clear unread, got %d", c.Unread)
	}
	if s.ByPeer("2").Unread != 0 {
		t.Fatalf("unread not cleared in the store")
	}
}

func TestOpenUnknownPeer(t *testing.T) {
	s := NewSeededStore()
	if c := s.Open("999"); c != nil {
		t.Fatalf("expected nil for unknown peer, got %+v", c)
	}
}

func TestSendPassesThroughTransport(t *testing.T) {
	rec := &recordingTransport{}
	s := NewStore(SeedConversations(), rec)
	if err := s.Send("2", "still available?"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if rec.calls != 1 || rec.peer != "2" || rec.text != "still available?" {
		t.Fatalf("transport saw %d calls, peer %q text %q", rec.calls, rec.peer, rec.text)
	}
}

func TestSendDropsBlankInput(t *testing.T) {
	rec := &recordingTransport{err: errors.New("should not be reached")}
	s := NewStore(nil, rec)
	if err := s.Send("2", "   "); err != nil {
		t.Fatalf("blank send must be a silent no-op, got %v", err)
	}
	if rec.calls != 0 {
		t.Fatalf("blank input must not reach the transport")
	}
}

func TestNilTransportFallsBackToNop(t *testing.T) {
	s := NewStore(nil, nil)
	if err := s.Send("2", "hello"); err != nil {
		t.Fatalf("nop transport must accept sends, got %v", err)
	}
}

func TestLastMessage(t *testing.T) {
	var empty Conversation
	if got := empty.LastMessage(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	convs := SeedConversations()
	if got := convs[0].LastMessage(); got != "Sure! Can we meet this evening?" {
		t.Fatalf("unexpected last message: %q", got)
	}
}
