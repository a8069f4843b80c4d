// Package notification reports user-facing outcomes (a session was created, a
// write failed) to whatever sinks the server is configured with. Notifying is
// fire-and-forget: sinks log their own failures and never fail the caller.
package notification

//go:generate mockgen -destination=mock/mock_notifier.go -package=notificationmock github.com/KirkDiggler/rpg-campaign-api/internal/services/notification Notifier

import (
	"context"
	"time"
)

// Kind classifies a notification for presentation
type Kind string

// Notification kinds
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Kinds lists every notification kind
var Kinds = []Kind{KindSuccess, KindError, KindWarning, KindInfo}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Notification is the payload delivered to sinks
type Notification struct {
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier delivers a notification
type Notifier interface {
	Notify(ctx context.Context, kind Kind, message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, kind Kind, message string)

// Notify calls f
func (f NotifierFunc) Notify(ctx context.Context, kind Kind, message string) {
	f(ctx, kind, message)
}

// Nop discards every notification
var Nop Notifier = NotifierFunc(func(context.Context, Kind, string) {})

type multi []Notifier

// Multi fans a notification out to every non-nil notifier in order
func Multi(notifiers ...Notifier) Notifier {
	out := make(multi, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m multi) Notify(ctx context.Context, kind Kind, message string) {
	for _, n := range m {
		n.Notify(ctx, kind, message)
	}
}
