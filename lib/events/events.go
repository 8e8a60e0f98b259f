// Package events is the in-process domain event bus. The lifecycle core
// publishes removals and fills; dependent subsystems subscribe and convert
// their own references instead of the core reaching into their storage.
package events

import (
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EmployeeRemoved is published after a soft or hard delete commits.
type EmployeeRemoved struct {
	EmployeeRef string // internal primary key
	Identifier  string // public identifier
	DisplayName string // name as it appeared before scrubbing
	Replacement string // bracketed identifier reference
}

// PositionFilled is published after a vacant position is filled.
type PositionFilled struct {
	PositionRef string
	PositionID  string
	EmployeeRef string
}

type EmployeeRemovedHandler func(e EmployeeRemoved)
type PositionFilledHandler func(e PositionFilled)

var (
	mu                      sync.RWMutex
	employeeRemovedHandlers []EmployeeRemovedHandler
	positionFilledHandlers  []PositionFilledHandler
)

func SubscribeEmployeeRemoved(h EmployeeRemovedHandler) {
	mu.Lock()
	defer mu.Unlock()
	employeeRemovedHandlers = append(employeeRemovedHandlers, h)
}

func SubscribePositionFilled(h PositionFilledHandler) {
	mu.Lock()
	defer mu.Unlock()
	positionFilledHandlers = append(positionFilledHandlers, h)
}

// PublishEmployeeRemoved runs subscribers asynchronously; a failing subscriber
// never affects the publishing transaction, which has already committed.
func PublishEmployeeRemoved(e EmployeeRemoved) {
	mu.RLock()
	handlers := make([]EmployeeRemovedHandler, len(employeeRemovedHandlers))
	copy(handlers, employeeRemovedHandlers)
	mu.RUnlock()
	for _, h := range handlers {
		go runHandler("employee_removed", func() { h(e) })
	}
}

func PublishPositionFilled(e PositionFilled) {
	mu.RLock()
	handlers := make([]PositionFilledHandler, len(positionFilledHandlers))
	copy(handlers, positionFilledHandlers)
	mu.RUnlock()
	for _, h := range handlers {
		go runHandler("position_filled", func() { h(e) })
	}
}

// Reset drops all subscriptions. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	employeeRemovedHandlers = nil
	positionFilledHandlers = nil
}

func runHandler(event string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("event", event).
				WithField("panic_stack", string(debug.Stack())).
				Errorf("event subscriber panic: (%v)", r)
		}
	}()
	fn()
}
