package gov

import (
	"github.com/tendermint/tendermint/libs/log"

	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/errors"
)

// Initializer builds an engine from the "governance" section of a genesis
// document.
type Initializer struct {
	// Recoverer and Logger configure the engine the same way the matching
	// EngineOptions fields do. Both may be nil.
	Recoverer Recoverer
	Logger    log.Logger
}

// FromGenesis will parse the initial engine setup from the genesis options
// and build the engine from it. The consensus policy accepts both the
// object and the "n/d" string form.
func (i Initializer) FromGenesis(opts governance.Options) (*Engine, error) {
	var conf struct {
		EngineID  string `json:"engine_id"`
		Governors []struct {
			Address governance.Address `json:"address"`
			Power   governance.Weight  `json:"power"`
		} `json:"governors"`
		Consensus governance.QuorumPolicy `json:"consensus"`
	}
	if err := opts.ReadOptions("governance", &conf); err != nil {
		return nil, errors.Wrap(err, "governance options")
	}

	eopts := EngineOptions{
		EngineID:  conf.EngineID,
		Governors: make([]governance.Address, 0, len(conf.Governors)),
		Weights:   make([]governance.Weight, 0, len(conf.Governors)),
		Consensus: conf.Consensus,
		Recoverer: i.Recoverer,
		Logger:    i.Logger,
	}
	for _, g := range conf.Governors {
		eopts.Governors = append(eopts.Governors, g.Address)
		eopts.Weights = append(eopts.Weights, g.Power)
	}
	return NewEngine(eopts)
}
