package remote

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/stepwheel/event"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		expected event.Type
		ok       bool
	}{
		{"Began", Message{Type: "began"}, event.GestureBegan, true},
		{"Changed", Message{Type: "changed", TranslationPx: -24, VelocityPxPerSec: -300}, event.GestureChanged, true},
		{"Ended", Message{Type: "ended", VelocityPxPerSec: 120}, event.GestureEnded, true},
		{"Interrupted", Message{Type: "interrupted"}, event.GestureInterrupted, true},
		{"Unknown", Message{Type: "wiggle"}, 0, false},
		{"Empty", Message{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := translate(tt.msg)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if ev.Type != tt.expected {
				t.Errorf("Expected type %v, got %v", tt.expected, ev.Type)
			}
			if ev.TranslationPx != tt.msg.TranslationPx {
				t.Errorf("Expected translation %v, got %v", tt.msg.TranslationPx, ev.TranslationPx)
			}
		})
	}
}

func TestSourceRoundTrip(t *testing.T) {
	q := event.NewQueue()
	src := NewSource("127.0.0.1:18137", q)
	if err := src.Start(); err != nil {
		t.Skipf("cannot bind test port: %v", err)
	}
	defer src.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws://127.0.0.1:18137/gesture", nil)
	if err != nil {
		t.Fatalf("Expected dial to succeed, got %v", err)
	}
	defer conn.Close()

	script := []Message{
		{Type: "began"},
		{Type: "changed", TranslationPx: -12, VelocityPxPerSec: -200},
		{Type: "wiggle"}, // must be dropped, not break the stream
		{Type: "changed", TranslationPx: -24, VelocityPxPerSec: -250},
		{Type: "ended", VelocityPxPerSec: -250},
	}
	for _, msg := range script {
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatalf("Expected write to succeed, got %v", err)
		}
	}

	expected := []event.Type{
		event.GestureBegan,
		event.GestureChanged,
		event.GestureChanged,
		event.GestureEnded,
	}

	var got []event.GestureEvent
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < len(expected) && time.Now().Before(deadline) {
		got = append(got, q.Consume()...)
		time.Sleep(5 * time.Millisecond)
	}

	if len(got) != len(expected) {
		t.Fatalf("Expected %d events, got %d", len(expected), len(got))
	}
	for i, ev := range got {
		if ev.Type != expected[i] {
			t.Errorf("Expected event %d to be %v, got %v", i, expected[i], ev.Type)
		}
	}
	if got[1].TranslationPx != -12 {
		t.Errorf("Expected translation -12, got %v", got[1].TranslationPx)
	}
}
