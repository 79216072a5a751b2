package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/stepwheel/constants"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 10; i++ {
		q.Push(GestureEvent{Type: GestureChanged, TranslationPx: float64(i)})
	}

	events := q.Consume()
	if len(events) != 10 {
		t.Fatalf("Expected 10 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.TranslationPx != float64(i) {
			t.Errorf("Expected FIFO order, slot %d holds translation %v", i, ev.TranslationPx)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("Expected drained queue, got %d events", len(again))
	}
}

func TestQueueEmptyConsume(t *testing.T) {
	q := NewQueue()
	if events := q.Consume(); events != nil {
		t.Errorf("Expected nil from empty queue, got %v", events)
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()

	total := constants.GestureQueueSize + 50
	for i := 0; i < total; i++ {
		q.Push(GestureEvent{Type: GestureChanged, TranslationPx: float64(i)})
	}

	events := q.Consume()
	if len(events) == 0 || len(events) > constants.GestureQueueSize {
		t.Fatalf("Expected at most %d events, got %d", constants.GestureQueueSize, len(events))
	}

	// The newest event must have survived; the oldest must be gone.
	last := events[len(events)-1]
	if last.TranslationPx != float64(total-1) {
		t.Errorf("Expected newest event retained, got translation %v", last.TranslationPx)
	}
	if events[0].TranslationPx == 0 {
		t.Error("Expected oldest event dropped on overflow")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 8
	const perProducer = 20

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GestureEvent{Type: GestureChanged})
			}
		}()
	}
	wg.Wait()

	got := 0
	for {
		events := q.Consume()
		if events == nil {
			break
		}
		got += len(events)
	}
	if got != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, got)
	}
}
