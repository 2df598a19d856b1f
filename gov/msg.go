package gov

import (
	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/errors"
)

// Destination paths of the self amendment actions. They are registered on
// the engine router at construction.
const (
	pathUpdateGovernorMsg  = "gov/update_governor"
	pathReplaceGovernorMsg = "gov/replace_governor"
	pathSetConsensusMsg    = "gov/set_consensus"
)

// Msg is implemented by every amendment message this package routes.
type Msg interface {
	Path() string
	Validate() error
}

// UpdateGovernorMsg sets the power of a single governor. Zero power removes
// the governor from the table.
type UpdateGovernorMsg struct {
	Governor governance.Address `json:"governor"`
	Power    governance.Weight  `json:"power"`
}

var _ Msg = (*UpdateGovernorMsg)(nil)

// Path fulfills the Msg interface to allow routing
func (UpdateGovernorMsg) Path() string {
	return pathUpdateGovernorMsg
}

// Validate enforces that the governor is a well formed address
func (m *UpdateGovernorMsg) Validate() error {
	return errors.AppendField(nil, "Governor", m.Governor.Validate())
}

// ReplaceGovernorMsg moves the full power of one governor to another
// address that holds no power yet.
type ReplaceGovernorMsg struct {
	Old governance.Address `json:"old"`
	New governance.Address `json:"new"`
}

var _ Msg = (*ReplaceGovernorMsg)(nil)

// Path fulfills the Msg interface to allow routing
func (ReplaceGovernorMsg) Path() string {
	return pathReplaceGovernorMsg
}

// Validate enforces that both addresses are well formed
func (m *ReplaceGovernorMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Old", m.Old.Validate())
	errs = errors.AppendField(errs, "New", m.New.Validate())
	return errs
}

// SetConsensusMsg overwrites the quorum policy of the engine.
type SetConsensusMsg struct {
	Consensus governance.QuorumPolicy `json:"consensus"`
}

var _ Msg = (*SetConsensusMsg)(nil)

// Path fulfills the Msg interface to allow routing
func (SetConsensusMsg) Path() string {
	return pathSetConsensusMsg
}

// Validate enforces the policy is well formed. Whether it can be satisfied
// is not checked, see SetConsensus.
func (m *SetConsensusMsg) Validate() error {
	return errors.AppendField(nil, "Consensus", m.Consensus.Validate())
}
