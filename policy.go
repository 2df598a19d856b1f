package governance

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/blackbird014/contract-ownership-governance/errors"
)

// QuorumPolicy describes the amount of voting power that must back an
// authorized call.
//
// A zero Denominator declares an absolute policy: the threshold is the
// Numerator itself, regardless of how much power the governors hold in
// total. A non zero Denominator declares a fractional policy: strictly more
// than Numerator/Denominator of the total power must sign, so the threshold
// follows the governor table as it changes.
type QuorumPolicy struct {
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
}

// Threshold returns the minimal amount of power that satisfies this policy
// for the given total. For a fractional policy that is
// floor(Numerator*totalPower/Denominator)+1, computed without intermediate
// overflow. An overflow error is returned when the result does not fit a
// weight, in which case no signature set can satisfy the policy.
func (p QuorumPolicy) Threshold(totalPower Weight) (Weight, error) {
	if p.Denominator == 0 {
		return Weight(p.Numerator), nil
	}

	num := new(big.Int).SetUint64(p.Numerator)
	total := new(big.Int).SetUint64(uint64(totalPower))
	den := new(big.Int).SetUint64(p.Denominator)

	t := new(big.Int).Mul(num, total)
	t.Quo(t, den)
	t.Add(t, big.NewInt(1))
	if !t.IsUint64() {
		return 0, errors.ErrOverflow.Newf("threshold %s", t)
	}
	return Weight(t.Uint64()), nil
}

// Validate returns an error if this policy represents an invalid value.
//
// Any combination of numerator and denominator is a well formed policy,
// including one that no signature set can currently satisfy. Whether the
// policy is satisfiable is the callers responsibility to check.
func (p QuorumPolicy) Validate() error {
	return nil
}

// String returns a human readable policy representation.
func (p *QuorumPolicy) String() string {
	if p == nil {
		return "nil"
	}
	if p.Denominator == 0 {
		return fmt.Sprint(p.Numerator)
	}
	return fmt.Sprintf("%d/%d", p.Numerator, p.Denominator)
}

// Normalize returns a new policy instance that has its numerator and
// denominator reduced to the smallest possible representation. This is an
// explicit utility and is never applied implicitly, so that a policy reads
// back exactly as it was set.
func (p QuorumPolicy) Normalize() QuorumPolicy {
	if p.Denominator == 0 {
		return p
	}
	div := uintGcd(p.Numerator, p.Denominator)
	return QuorumPolicy{
		Numerator:   p.Numerator / div,
		Denominator: p.Denominator / div,
	}
}

func uintGcd(a, b uint64) uint64 {
	for b != 0 {
		t := b
		b = a % b
		a = t
	}
	return a
}

func (p QuorumPolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Numerator   uint64 `json:"numerator"`
		Denominator uint64 `json:"denominator"`
	}{
		Numerator:   p.Numerator,
		Denominator: p.Denominator,
	})
}

func (p *QuorumPolicy) UnmarshalJSON(raw []byte) error {
	// Prioritize human readable format.
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		pol, err := ParsePolicyString(human)
		if err != nil {
			return errors.Wrap(err, "policy string")
		}
		*p = *pol
		return nil
	}

	var pol struct {
		Numerator   uint64
		Denominator uint64
	}
	if err := json.Unmarshal(raw, &pol); err != nil {
		return err
	}
	p.Numerator = pol.Numerator
	p.Denominator = pol.Denominator
	return nil
}

// ParsePolicyString returns a policy value that is represented by given
// string. A bare number declares an absolute policy, a "n/d" pair declares a
// fractional one. This function fails if given string does not represent a
// policy value.
func ParsePolicyString(raw string) (*QuorumPolicy, error) {
	chunks := strings.SplitN(raw, "/", 2)
	n, err := strconv.ParseUint(chunks[0], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "numerator")
	}
	if len(chunks) == 1 {
		return &QuorumPolicy{Numerator: n, Denominator: 0}, nil
	}
	d, err := strconv.ParseUint(chunks[1], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "denominator")
	}
	return &QuorumPolicy{Numerator: n, Denominator: d}, nil
}
