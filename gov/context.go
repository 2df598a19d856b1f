package gov

import (
	"context"

	governance "github.com/blackbird014/contract-ownership-governance"
)

type contextKey int // local to the gov package

const (
	contextKeyAuthority contextKey = iota
)

// withAuthority is a private method, as only the engine dispatch can mark a
// context as carrying the engine authority.
func withAuthority(ctx governance.Context, c governance.Condition) governance.Context {
	return context.WithValue(ctx, contextKeyAuthority, c)
}

// Authenticate gets the engine authority set on the context by dispatch.
type Authenticate struct {
}

var _ governance.Authenticator = Authenticate{}

// GetConditions returns the engine condition previously set on this context
func (a Authenticate) GetConditions(ctx governance.Context) []governance.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyAuthority).(governance.Condition)
	if val == nil {
		return nil
	}
	return []governance.Condition{val}
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx governance.Context, addr governance.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// EngineCondition returns the identity of the engine instance with the
// given ID. Its address gates self amendment and is bound into every signed
// digest, so signatures never replay across engine instances.
func EngineCondition(engineID string) governance.Condition {
	return governance.NewCondition("gov", "engine", []byte(engineID))
}
