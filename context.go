package governance

import (
	"context"
	"regexp"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just a synonym for the standard implementation. We pass state
// between the engine and the dispatched actions through it. For every XYZ of
// type T carried by the context there should exist two functions:
//
//   WithXYZ(Context, T) Context
//   GetXYZ(Context) T
//
// Each package may add its own private keys to enrich the context with
// specific data, the way gov does with the engine authority.
type Context = context.Context

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidEngineID is the RegExp to ensure valid engine instance IDs
	IsValidEngineID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

type contextKey int // local to this package

const (
	contextKeyLogger contextKey = iota
)

// WithLogger sets the logger for this Context
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger can be overridden below... no problem
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// components that gate operations on a condition, so the check always reads
// an explicit parameter and never ambient mutable state.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled
	GetConditions(Context) []Condition
	// HasAddress checks if any condition matches this address
	HasAddress(Context, Address) bool
}
