// Package notify carries user-facing toast notifications.
package notify

import "time"

// Variant selects how a toast is styled.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

// Notification is a single toast.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
	At          time.Time
}

// Notifier receives toasts.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Info builds a default toast.
func Info(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault, At: time.Now()}
}

// Error builds a destructive toast.
func Error(description string) Notification {
	return Notification{Title: "Error", Description: description, Variant: VariantDestructive, At: time.Now()}
}

// Queue is a buffered Notifier that the UI drains with Next.
// When the buffer is full the oldest pending toast is dropped.
type Queue struct {
	ch chan Notification
}

// DefaultQueueSize is the buffer used by NewQueue when size <= 0.
const DefaultQueueSize = 16

// NewQueue returns a Queue holding up to size pending toasts.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Notification, size)}
}

// Notify enqueues n without blocking.
func (q *Queue) Notify(n Notification) {
	if n.At.IsZero() {
		n.At = time.Now()
	}
	for {
		select {
		case q.ch <- n:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

// Next blocks until a toast is available.
func (q *Queue) Next() Notification {
	return <-q.ch
}

// C exposes the receive side of the queue.
func (q *Queue) C() <-chan Notification {
	return q.ch
}
