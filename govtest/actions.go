package govtest

import (
	governance "github.com/blackbird014/contract-ownership-governance"
)

// Action is a mock implementing the governance.Action interface. It records
// every call and responds with the configured result and error.
type Action struct {
	calls []*governance.Call

	ExecResult *governance.ExecResult
	ExecErr    error
}

var _ governance.Action = (*Action)(nil)

func (a *Action) Execute(ctx governance.Context, call *governance.Call) (*governance.ExecResult, error) {
	a.calls = append(a.calls, call)
	return a.ExecResult, a.ExecErr
}

// CallCount returns the number of times this action was executed.
func (a *Action) CallCount() int {
	return len(a.calls)
}

// LastCall returns the most recent call, nil when the action was never
// executed.
func (a *Action) LastCall() *governance.Call {
	if len(a.calls) == 0 {
		return nil
	}
	return a.calls[len(a.calls)-1]
}
