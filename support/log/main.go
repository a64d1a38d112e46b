// Package log provides the leveled, structured logger used throughout this
// SDK, modeled on stellar/go's own support/log package: a shared logrus
// entry plus a context-scoped accessor so callers can attach request-local
// fields (e.g. a simulate/submit correlation id) without threading a logger
// through every function signature.
package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// DefaultLogger is the package-level logger used when no context-scoped
// logger has been installed. Its level defaults to Info; library code never
// raises it, only the host application should.
var DefaultLogger = logrus.NewEntry(logrus.New())

// Ctx returns the logger attached to ctx via Context, or DefaultLogger if
// none was attached.
func Ctx(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
			return l
		}
	}
	return DefaultLogger
}

// Context returns a child context carrying l as the logger Ctx will return.
func Context(ctx context.Context, l *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithField is a convenience wrapper around DefaultLogger.WithField, used by
// call sites that just want to tag one field without touching the context.
func WithField(key string, value interface{}) *logrus.Entry {
	return DefaultLogger.WithField(key, value)
}
