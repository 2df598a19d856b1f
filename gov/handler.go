package gov

import (
	"encoding/json"

	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/errors"
)

// RegisterActions registers all self amendment actions of the given engine.
// NewEngine does this on the engine's own router, so usually there is no
// need to call it directly.
func RegisterActions(r governance.Registry, e *Engine) {
	r.Handle(pathUpdateGovernorMsg, updateGovernorAction{engine: e})
	r.Handle(pathReplaceGovernorMsg, replaceGovernorAction{engine: e})
	r.Handle(pathSetConsensusMsg, setConsensusAction{engine: e})
}

// loadMsg decodes the call payload into the message and validates it.
func loadMsg(call *governance.Call, msg Msg) error {
	if err := json.Unmarshal(call.Payload, msg); err != nil {
		return errors.Wrapf(errors.ErrInvalidMsg, "%v", err)
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}

type updateGovernorAction struct {
	engine *Engine
}

var _ governance.Action = updateGovernorAction{}

func (a updateGovernorAction) Execute(ctx governance.Context, call *governance.Call) (*governance.ExecResult, error) {
	var msg UpdateGovernorMsg
	if err := loadMsg(call, &msg); err != nil {
		return nil, err
	}
	return a.engine.UpdateGovernor(ctx, msg.Governor, msg.Power)
}

type replaceGovernorAction struct {
	engine *Engine
}

var _ governance.Action = replaceGovernorAction{}

func (a replaceGovernorAction) Execute(ctx governance.Context, call *governance.Call) (*governance.ExecResult, error) {
	var msg ReplaceGovernorMsg
	if err := loadMsg(call, &msg); err != nil {
		return nil, err
	}
	return a.engine.ReplaceGovernor(ctx, msg.Old, msg.New)
}

type setConsensusAction struct {
	engine *Engine
}

var _ governance.Action = setConsensusAction{}

func (a setConsensusAction) Execute(ctx governance.Context, call *governance.Call) (*governance.ExecResult, error) {
	var msg SetConsensusMsg
	if err := loadMsg(call, &msg); err != nil {
		return nil, err
	}
	return a.engine.SetConsensus(ctx, msg.Consensus)
}
