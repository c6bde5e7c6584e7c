// Package mediator routes chat messages between users who never reference
// each other directly.
package mediator

import (
	"go.uber.org/zap"

	"pattern-catalog/internal/logging"
)

// Mediator delivers a message to every registered user except the sender.
type Mediator struct {
	users []*ChatUser
}

// New creates an empty mediator.
func New() *Mediator {
	return &Mediator{}
}

// AddUser registers u and returns m for chaining.
func (m *Mediator) AddUser(u *ChatUser) *Mediator {
	m.users = append(m.users, u)
	return m
}

// SendMessage delivers msg to everyone but from, in registration order.
func (m *Mediator) SendMessage(msg string, from *ChatUser) {
	for _, u := range m.users {
		if u != from {
			u.Receive(msg)
		}
	}
}

// ChatUser talks only to its mediator.
type ChatUser struct {
	mediator *Mediator
	name     string
	inbox    []string
}

// NewChatUser creates a user bound to m. It is not registered until AddUser.
func NewChatUser(m *Mediator, name string) *ChatUser {
	return &ChatUser{mediator: m, name: name}
}

// Name returns the user name
func (u *ChatUser) Name() string { return u.name }

// Send hands msg to the mediator.
func (u *ChatUser) Send(msg string) {
	logging.Named("mediator").Debug("sending message", zap.String("user", u.name), zap.String("message", msg))
	u.mediator.SendMessage(msg, u)
}

// Receive records msg in the inbox.
func (u *ChatUser) Receive(msg string) {
	logging.Named("mediator").Debug("received message", zap.String("user", u.name), zap.String("message", msg))
	u.inbox = append(u.inbox, msg)
}

// Inbox returns received messages, oldest first.
func (u *ChatUser) Inbox() []string {
	return append([]string(nil), u.inbox...)
}
