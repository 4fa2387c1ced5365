// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"log/slog"
	"sync"
)

// # Event Bus

// MutationHandler reacts to a successful mutation.
type MutationHandler func(mutation Mutation)

// Bus is a [Host] that fans mutation events out to subscribers.
//
// Handlers run synchronously on the caller's goroutine, in subscription order.
type Bus struct {
	mu        sync.RWMutex
	handlers  map[MutationKind][]MutationHandler
	wildcard  []MutationHandler
	navigator func(path string)
}

// NewBus creates a bus. navigator receives navigation requests and may be nil.
func NewBus(navigator func(path string)) *Bus {
	return &Bus{
		handlers:  make(map[MutationKind][]MutationHandler),
		navigator: navigator,
	}
}

// Subscribe registers handler for one mutation kind.
func (bus *Bus) Subscribe(kind MutationKind, handler MutationHandler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[kind] = append(bus.handlers[kind], handler)
}

// SubscribeAll registers handler for every mutation, typically the page refetch.
func (bus *Bus) SubscribeAll(handler MutationHandler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.wildcard = append(bus.wildcard, handler)
}

// MutationSucceeded implements [Host].
func (bus *Bus) MutationSucceeded(mutation Mutation) {
	bus.mu.RLock()
	handlers := append(append([]MutationHandler(nil), bus.handlers[mutation.Kind]...), bus.wildcard...)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		handler(mutation)
	}
}

// Navigate implements [Host].
func (bus *Bus) Navigate(path string) {
	if bus.navigator != nil {
		bus.navigator(path)
	}
}

// # Notifications

// LogNotifier is a [Notifier] writing every message to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier wraps logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Success implements [Notifier].
func (notifier *LogNotifier) Success(message string) {
	notifier.logger.Info("notify_success", slog.String("message", message))
}

// Error implements [Notifier].
func (notifier *LogNotifier) Error(message string) {
	notifier.logger.Warn("notify_error", slog.String("message", message))
}
