package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeSessionSettled EventType = "session_settled"
	EventTypeBalanceChange  EventType = "balance_change"
	EventTypeRaceResolved   EventType = "race_resolved"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// SessionSettledEvent is emitted when a closed voice session has been
// committed to the ledger
type SessionSettledEvent struct {
	UserID         int64
	ElapsedSeconds int64
	CurrencyAward  int64
}

func (e SessionSettledEvent) Type() EventType {
	return EventTypeSessionSettled
}

// BalanceChangeEvent represents a balance adjustment that was applied
type BalanceChangeEvent struct {
	UserID int64
	Delta  int64
	Reason string
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// RaceResolvedEvent is emitted after a guild's horse race has paid out
type RaceResolvedEvent struct {
	GuildID int64
	Winner  string
	Bets    int
}

func (e RaceResolvedEvent) Type() EventType {
	return EventTypeRaceResolved
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously so publishers are never blocked.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}
