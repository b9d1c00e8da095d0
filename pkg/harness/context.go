package harness

import (
	"context"

	"digital.vasic.artifacts/pkg/logging"
	"digital.vasic.artifacts/pkg/page"
	"digital.vasic.artifacts/pkg/scenario"
)

type ctxKey int

const (
	pageKey ctxKey = iota
	stateKey
)

// scenarioState is what the before hook hands to the after hook.
type scenarioState struct {
	id     scenario.Identity
	logger logging.Logger
}

// WithPage records the browser page of the current scenario. Step
// definitions return the derived context to godog.
func WithPage(ctx context.Context, h page.Handle) context.Context {
	return context.WithValue(ctx, pageKey, h)
}

// PageFrom returns the page recorded with WithPage, or an absent
// handle.
func PageFrom(ctx context.Context) page.Handle {
	if h, ok := ctx.Value(pageKey).(page.Handle); ok {
		return h
	}
	return page.None()
}

// LoggerFrom returns the scenario logger opened by the before hook.
// Outside a scenario it returns a NullLogger.
func LoggerFrom(ctx context.Context) logging.Logger {
	if st, ok := ctx.Value(stateKey).(*scenarioState); ok && st.logger != nil {
		return st.logger
	}
	return logging.NullLogger{}
}

// IdentityFrom returns the identity assigned by the before hook.
func IdentityFrom(ctx context.Context) (scenario.Identity, bool) {
	if st, ok := ctx.Value(stateKey).(*scenarioState); ok {
		return st.id, true
	}
	return "", false
}

func withState(ctx context.Context, st *scenarioState) context.Context {
	return context.WithValue(ctx, stateKey, st)
}

func stateFrom(ctx context.Context) (*scenarioState, bool) {
	st, ok := ctx.Value(stateKey).(*scenarioState)
	return st, ok
}
