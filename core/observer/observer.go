// Package observer dispatches push events to listeners subscribed by topic.
package observer

import (
	"reflect"

	"go.uber.org/zap"

	"pattern-catalog/internal/errors"
	"pattern-catalog/internal/logging"
)

// PushEvent names the file an operation touched.
type PushEvent struct {
	EventName string
}

// EventListener receives events for the topics it subscribed to.
type EventListener interface {
	Update(eventType string, event PushEvent)
}

// EventManager holds one ordered listener list per topic. Topics are fixed
// at construction; subscribing to any other topic is a no-op.
type EventManager struct {
	listeners map[string][]EventListener
}

// NewEventManager creates a manager accepting the given topics.
func NewEventManager(operations ...string) *EventManager {
	m := &EventManager{listeners: make(map[string][]EventListener, len(operations))}
	for _, op := range operations {
		m.listeners[op] = nil
	}
	return m
}

// Accepts reports whether eventType is one of the manager's topics.
func (m *EventManager) Accepts(eventType string) bool {
	_, ok := m.listeners[eventType]
	return ok
}

// Subscribe appends l to the topic's listeners.
func (m *EventManager) Subscribe(eventType string, l EventListener) {
	users, ok := m.listeners[eventType]
	if !ok {
		return
	}
	m.listeners[eventType] = append(users, l)
}

// Unsubscribe removes the first subscription of l to the topic. Listeners
// whose dynamic type is not comparable cannot be matched and stay subscribed.
func (m *EventManager) Unsubscribe(eventType string, l EventListener) {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return
	}
	users := m.listeners[eventType]
	for i, u := range users {
		if u == l {
			m.listeners[eventType] = append(users[:i:i], users[i+1:]...)
			return
		}
	}
}

// Notify delivers event to the topic's current listeners in subscription order.
func (m *EventManager) Notify(eventType string, event PushEvent) {
	users := m.listeners[eventType]
	for _, l := range users {
		l.Update(eventType, event)
	}
}

// Subscribers returns how many listeners the topic has.
func (m *EventManager) Subscribers(eventType string) int {
	return len(m.listeners[eventType])
}

// EventGenerator raises events on topics "a" and "b".
type EventGenerator struct {
	events    *EventManager
	pushEvent *PushEvent
}

// NewEventGenerator creates a generator with topics "a" and "b".
func NewEventGenerator() *EventGenerator {
	return &EventGenerator{events: NewEventManager("a", "b")}
}

// Events exposes the manager for subscription.
func (g *EventGenerator) Events() *EventManager { return g.events }

// GenerateEventA records filePath as the current event and notifies topic "a".
func (g *EventGenerator) GenerateEventA(filePath string) {
	g.pushEvent = &PushEvent{EventName: filePath}
	g.events.Notify("a", *g.pushEvent)
}

// GenerateEventB re-sends the current event on topic "b". It fails if no
// event has been generated yet.
func (g *EventGenerator) GenerateEventB() error {
	if g.pushEvent == nil {
		return errors.IllegalState("event b requires a prior event a")
	}
	g.events.Notify("b", *g.pushEvent)
	return nil
}

// EmailNotificationListener mails a notice for every operation.
type EmailNotificationListener struct {
	email    string
	received []string
}

// NewEmailNotificationListener creates a listener mailing email.
func NewEmailNotificationListener(email string) *EmailNotificationListener {
	return &EmailNotificationListener{email: email}
}

func (l *EmailNotificationListener) Update(eventType string, event PushEvent) {
	logging.Named("observer").Info("email notification",
		zap.String("to", l.email),
		zap.String("operation", eventType),
		zap.String("file", event.EventName),
	)
	l.received = append(l.received, eventType)
}

// Received returns the operations notified so far.
func (l *EmailNotificationListener) Received() []string {
	return append([]string(nil), l.received...)
}

// LogOpenListener appends a line to a log for every operation.
type LogOpenListener struct {
	Filename string
	received []string
}

// NewLogOpenListener creates a listener logging to filename.
func NewLogOpenListener(filename string) *LogOpenListener {
	return &LogOpenListener{Filename: filename}
}

func (l *LogOpenListener) Update(eventType string, event PushEvent) {
	logging.Named("observer").Info("save to log",
		zap.String("log", l.Filename),
		zap.String("operation", eventType),
		zap.String("file", event.EventName),
	)
	l.received = append(l.received, eventType)
}

// Received returns the operations notified so far.
func (l *LogOpenListener) Received() []string {
	return append([]string(nil), l.received...)
}
