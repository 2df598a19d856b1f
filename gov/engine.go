package gov

import (
	"bytes"
	"fmt"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	governance "github.com/blackbird014/contract-ownership-governance"
	"github.com/blackbird014/contract-ownership-governance/crypto"
	"github.com/blackbird014/contract-ownership-governance/errors"
)

const (
	// To avoid burning CPU, this is the maximum number of governors
	// allowed to hold power at the same time.
	maxGovernors = 1000

	// maxTransactionsCount is the highest value the transaction counter
	// can reach. This is the largest integer that keeps an exact
	// representation in clients that store numbers as 64 bit floats.
	maxTransactionsCount = 1<<53 - 1
)

// Tag names attached to amendment results.
const (
	tagAction   = "action"
	tagGovernor = "governor"
)

// Recoverer turns one signature set entry back into the address of its
// signer. A failed verification must never reveal an identity.
type Recoverer interface {
	Recover(digest []byte, sig *crypto.StdSignature) (governance.Address, error)
}

// EngineOptions configures a new engine instance.
type EngineOptions struct {
	// EngineID names this engine instance. It is bound into every signed
	// digest, so instances that share governors must not share an ID.
	EngineID string

	// Governors and Weights are parallel sequences: Weights[i] is the
	// initial power of Governors[i]. A zero weight is allowed and seeds
	// the governor without power.
	Governors []governance.Address
	Weights   []governance.Weight

	// Consensus is the initial quorum policy.
	Consensus governance.QuorumPolicy

	// Recoverer verifies signature set entries. When nil, the ed25519
	// recovery from the crypto package is used.
	Recoverer Recoverer

	// Logger receives all engine activity. When nil, nothing is logged.
	Logger log.Logger
}

// Engine is the authorization state machine. It owns the governor table,
// the quorum policy and the transaction counter, and it mutates them only
// through calls that carry enough signing power.
//
// The engine does no locking. The embedding application serializes calls,
// and a dispatched action may call back into the engine within the same
// transaction.
type Engine struct {
	condition         governance.Condition
	table             *governorTable
	totalPower        governance.Weight
	consensus         governance.QuorumPolicy
	transactionsCount int64
	recoverer         Recoverer
	router            *governance.Router
	logger            log.Logger
}

var _ governance.Registry = (*Engine)(nil)

// NewEngine seeds an engine with the given governors and quorum policy. The
// self amendment actions are registered on the fresh engine router before
// it is returned.
func NewEngine(opts EngineOptions) (*Engine, error) {
	if !governance.IsValidEngineID(opts.EngineID) {
		return nil, errors.ErrInvalidInput.Newf("engine id: %q", opts.EngineID)
	}
	if len(opts.Governors) != len(opts.Weights) {
		return nil, errors.ErrInvalidInput.Newf("%d governors, %d weights", len(opts.Governors), len(opts.Weights))
	}
	if len(opts.Governors) > maxGovernors {
		return nil, errors.ErrInvalidInput.New("too many governors")
	}

	logger := opts.Logger
	if logger == nil {
		logger = governance.DefaultLogger
	}
	recoverer := opts.Recoverer
	if recoverer == nil {
		recoverer = crypto.Recovery{}
	}

	e := &Engine{
		condition: EngineCondition(opts.EngineID),
		table:     newGovernorTable(),
		consensus: opts.Consensus,
		recoverer: recoverer,
		router:    governance.NewRouter(),
		logger:    logger.With("module", "gov", "engine", opts.EngineID),
	}

	seen := make(map[string]struct{}, len(opts.Governors))
	for i, governor := range opts.Governors {
		if err := governor.Validate(); err != nil {
			return nil, errors.Wrapf(err, "governor %d", i)
		}
		if _, ok := seen[string(governor)]; ok {
			return nil, errors.ErrInvalidInput.Newf("governor %d: duplicate %s", i, governor)
		}
		seen[string(governor)] = struct{}{}

		power := opts.Weights[i]
		total, err := e.totalPower.Add(power)
		if err != nil {
			return nil, errors.Wrapf(err, "governor %d", i)
		}
		e.totalPower = total
		e.table.set(governor, power)
		e.logger.Info("Governor power set", "governor", governor, "power", power)
	}

	RegisterActions(e.router, e)
	return e, nil
}

// Handle registers an action under the given destination path, next to the
// self amendment actions. It panics on an invalid path or a double
// registration, registration is part of the application setup.
func (e *Engine) Handle(path string, a governance.Action) {
	e.router.Handle(path, a)
}

// ExecuteTransaction processes a single authorized call. The signature set
// is verified against the digest binding this engine, the transaction nonce
// and the payload; with enough signing power behind it, the payload is
// dispatched to the destination action.
//
// Everything up to and including the quorum check is read only: a rejected
// transaction leaves no trace. Once the transaction is authorized the
// counter advances, and it stays advanced even when the action fails. A
// retry needs a fresh signature set over the next nonce.
func (e *Engine) ExecuteTransaction(ctx governance.Context, tx *Tx) (*governance.ExecResult, error) {
	if tx == nil {
		return nil, errors.ErrEmpty.New("transaction")
	}
	if tx.Nonce != e.transactionsCount {
		return nil, ErrInvalidNonce.Newf("got %d, expected %d", tx.Nonce, e.transactionsCount)
	}

	digest, err := BuildDigest(e.Address(), tx.Nonce, tx.Destination, tx.Payload)
	if err != nil {
		return nil, err
	}

	voted, err := e.verifySignatures(digest, tx.Signatures)
	if err != nil {
		return nil, err
	}
	threshold, err := e.consensus.Threshold(e.totalPower)
	if err != nil {
		return nil, errors.Wrap(err, "consensus threshold")
	}
	if voted < threshold {
		return nil, ErrQuorumNotMet.Newf("%d of %d", voted, threshold)
	}

	if e.transactionsCount >= maxTransactionsCount {
		return nil, errors.Wrap(errors.ErrOverflow, "transactions count")
	}
	e.transactionsCount++

	e.logger.Debug("Dispatching authorized call",
		"destination", tx.Destination,
		"nonce", tx.Nonce,
		"power", voted)

	res, err := e.run(ctx, tx)
	if err != nil {
		e.logger.Error("Action reverted",
			"destination", tx.Destination,
			"nonce", tx.Nonce,
			"cause", err)
		return nil, errors.Wrapf(ErrActionReverted, "%v", err)
	}
	return res, nil
}

// verifySignatures authenticates the signature set against the digest and
// returns the total power behind it. The check is read only, it never
// mutates the engine.
//
// Entries must be ordered by strictly ascending signer address. The strict
// ordering is what guarantees that no signer appears twice, there is no
// separate duplicate bookkeeping.
func (e *Engine) verifySignatures(digest []byte, sigs []*crypto.StdSignature) (governance.Weight, error) {
	var voted governance.Weight
	var prev governance.Address
	for i, sig := range sigs {
		signer, err := e.recoverer.Recover(digest, sig)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedSignature, "signature %d: %v", i, err)
		}
		if bytes.Compare(prev, signer) >= 0 {
			return 0, errors.Wrapf(ErrUnsortedSigners, "signature %d", i)
		}
		prev = signer

		power := e.table.power(signer)
		if power == 0 {
			return 0, errors.Wrapf(ErrUnauthorizedSigner, "signature %d: %s", i, signer)
		}
		voted, err = voted.Add(power)
		if err != nil {
			return 0, err
		}
	}
	return voted, nil
}

// run resolves and executes the destination action under the engine
// authority. A panic inside the action is recovered and returned as an
// error, the engine itself survives.
func (e *Engine) run(ctx governance.Context, tx *Tx) (res *governance.ExecResult, err error) {
	defer errors.Recover(&err)

	action := e.router.Action(tx.Destination)
	if action == nil {
		return nil, errors.ErrNotFound.Newf("destination %q", tx.Destination)
	}

	ctx = withAuthority(ctx, e.condition)
	ctx = governance.WithLogger(ctx, e.logger.With("destination", tx.Destination, "nonce", tx.Nonce))

	return action.Execute(ctx, &governance.Call{
		Payload: tx.Payload,
		Value:   tx.Value,
	})
}

// UpdateGovernor sets the power of a single governor, adding or removing
// the governor as needed. Setting the power a governor already holds
// changes nothing and emits no notification.
//
// The context must carry the engine authority, only dispatch grants it.
func (e *Engine) UpdateGovernor(ctx governance.Context, governor governance.Address, power governance.Weight) (*governance.ExecResult, error) {
	if err := e.authorize(ctx); err != nil {
		return nil, err
	}
	if err := governor.Validate(); err != nil {
		return nil, errors.Wrap(err, "governor")
	}

	current := e.table.power(governor)
	if current == power {
		return &governance.ExecResult{Log: "no power change"}, nil
	}
	if current == 0 && e.table.size() >= maxGovernors {
		return nil, errors.ErrInvalidInput.New("too many governors")
	}

	total := e.totalPower
	var err error
	if power > current {
		total, err = total.Add(power - current)
	} else {
		total, err = total.Sub(current - power)
	}
	if err != nil {
		return nil, errors.Wrap(err, "total power")
	}

	e.table.set(governor, power)
	e.totalPower = total
	e.logger.Info("Governor power set", "governor", governor, "power", power)

	return &governance.ExecResult{
		Log:  fmt.Sprintf("governor %s power set to %d", governor, power),
		Diff: []governance.WeightChange{{Governor: governor.Clone(), Power: power}},
		Tags: []common.KVPair{
			{Key: []byte(tagAction), Value: []byte("update-governor")},
			{Key: []byte(tagGovernor), Value: governor},
		},
	}, nil
}

// ReplaceGovernor moves the full power of one governor to an address that
// holds no power yet. The total power does not change, replacing an absent
// governor moves zero power. No weight change notification is emitted, the
// power held did not change.
//
// The context must carry the engine authority, only dispatch grants it.
func (e *Engine) ReplaceGovernor(ctx governance.Context, from, to governance.Address) (*governance.ExecResult, error) {
	if err := e.authorize(ctx); err != nil {
		return nil, err
	}
	if err := from.Validate(); err != nil {
		return nil, errors.Wrap(err, "from")
	}
	if err := to.Validate(); err != nil {
		return nil, errors.Wrap(err, "to")
	}
	if e.table.power(to) != 0 {
		return nil, errors.Wrapf(ErrAlreadyGovernor, "%s", to)
	}

	power := e.table.power(from)
	e.table.set(from, 0)
	e.table.set(to, power)
	e.logger.Info("Governor replaced", "from", from, "to", to, "power", power)

	return &governance.ExecResult{
		Log: fmt.Sprintf("governor %s replaced by %s", from, to),
		Tags: []common.KVPair{
			{Key: []byte(tagAction), Value: []byte("replace-governor")},
			{Key: []byte(tagGovernor), Value: to},
		},
	}, nil
}

// SetConsensus overwrites the quorum policy. No satisfiability check is
// made: the governors are able to authorize a policy that no signature set
// can ever meet, which freezes the engine for good. Checking the policy
// before signing is the callers responsibility.
//
// The context must carry the engine authority, only dispatch grants it.
func (e *Engine) SetConsensus(ctx governance.Context, policy governance.QuorumPolicy) (*governance.ExecResult, error) {
	if err := e.authorize(ctx); err != nil {
		return nil, err
	}
	e.consensus = policy
	e.logger.Info("Consensus policy set", "policy", policy.String())

	return &governance.ExecResult{
		Log: fmt.Sprintf("consensus policy set to %s", policy.String()),
		Tags: []common.KVPair{
			{Key: []byte(tagAction), Value: []byte("set-consensus")},
		},
	}, nil
}

// authorize ensures the context carries this engine's own authority. Only
// dispatch injects it, so a pass means the call was authorized by a quorum
// of governors.
func (e *Engine) authorize(ctx governance.Context) error {
	var auth Authenticate
	if !auth.HasAddress(ctx, e.condition.Address()) {
		return errors.Wrap(ErrUnauthorizedAmendment, "missing engine authority")
	}
	return nil
}

// PowerOf returns the power held by this address, zero for addresses that
// are not governors.
func (e *Engine) PowerOf(governor governance.Address) governance.Weight {
	return e.table.power(governor)
}

// TotalPower returns the sum of the power of all governors.
func (e *Engine) TotalPower() governance.Weight {
	return e.totalPower
}

// Consensus returns the current quorum policy, exactly as it was set.
func (e *Engine) Consensus() governance.QuorumPolicy {
	return e.consensus
}

// RequiredVotes returns the amount of power that a signature set must carry
// to authorize a call right now. For fractional policies the value follows
// every governor table change.
func (e *Engine) RequiredVotes() (governance.Weight, error) {
	return e.consensus.Threshold(e.totalPower)
}

// TransactionsCount returns the number of authorized calls processed so
// far, which is also the nonce the next transaction must carry.
func (e *Engine) TransactionsCount() int64 {
	return e.transactionsCount
}

// Governors returns all weighted governors, ordered by ascending address.
func (e *Engine) Governors() []governance.WeightChange {
	return e.table.snapshot()
}

// Condition returns the engine identity.
func (e *Engine) Condition() governance.Condition {
	return e.condition
}

// Address is a shortcut for Condition().Address()
func (e *Engine) Address() governance.Address {
	return e.condition.Address()
}
