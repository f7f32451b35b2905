package eventbus

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newWarnPublisher() EventBus {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return NewEventPublisher(log)
}

type testEvent struct {
	data any
}

type otherEvent struct {
	data any
}

func TestPublisher_Subscribe(t *testing.T) {
	publisher := newWarnPublisher()

	called := false
	var data any
	publisher.Subscribe(func(e *testEvent) {
		called = true
		data = e.data
	})
	publisher.Publish(&testEvent{data: "test"})

	if !called {
		t.Error("should be called")
	}
	if data != "test" {
		t.Errorf("expected: %v, got: %v", "test", data)
	}
}

func TestPublisher_NoMatchingSubscribers(t *testing.T) {
	logBuffer := bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(&logBuffer)
	log.SetLevel(logrus.WarnLevel)

	publisher := NewEventPublisher(log)
	publisher.Subscribe(func(e *testEvent) {
		t.Error("should not be called")
	})
	publisher.Publish(&otherEvent{data: "test"})

	if output := logBuffer.String(); !strings.Contains(output, "no matching subscribers") {
		t.Errorf("should have warned about no matching subscribers, got: %q", output)
	}
}

func TestPublisher_PanicRecovery(t *testing.T) {
	logBuffer := bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(&logBuffer)
	log.SetLevel(logrus.ErrorLevel)

	publisher := NewEventPublisher(log)

	called := false
	publisher.Subscribe(func(e *testEvent) {
		panic("intentional panic for testing")
	})
	publisher.Subscribe(func(e *testEvent) {
		called = true
	})

	publisher.Publish(&testEvent{data: "test"})

	if !called {
		t.Error("second handler should run despite first handler panic")
	}
	output := logBuffer.String()
	if !strings.Contains(output, "panicked") {
		t.Errorf("log should contain 'panicked', got: %q", output)
	}
	if !strings.Contains(output, "intentional panic for testing") {
		t.Errorf("log should contain panic message, got: %q", output)
	}
}

func TestPublisher_Unsubscribe(t *testing.T) {
	publisher := NewEventPublisher(nil)

	handler := func(e *testEvent) {
		t.Error("should not be called after unsubscribe")
	}
	publisher.Subscribe(handler)
	if publisher.SubscribersCount() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", publisher.SubscribersCount())
	}

	publisher.Unsubscribe(handler)
	if publisher.SubscribersCount() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", publisher.SubscribersCount())
	}
	publisher.Publish(&testEvent{data: "x"})
}

func TestMatchSignature(t *testing.T) {
	if !MatchSignature(func(e *testEvent) {}, []any{&testEvent{}}) {
		t.Error("expected true")
	}
	if MatchSignature(func(e *testEvent) {}, []any{&otherEvent{}}) {
		t.Error("expected false")
	}
	if MatchSignature(func(e *testEvent) {}, []any{}) {
		t.Error("expected false")
	}
	if MatchSignature(func(e *testEvent) {}, []any{&testEvent{}, &testEvent{}}) {
		t.Error("expected false")
	}
	if !MatchSignature(func(e error) {}, []any{errors.New("x")}) {
		t.Error("expected true for interface parameter")
	}
}

