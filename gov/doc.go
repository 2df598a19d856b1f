/*
Package gov implements a threshold authorization engine: a group of weighted
governors jointly authorizes arbitrary actions by signing a digest off-line
and submitting the collected signatures in a single call.

The `Engine` holds the governor table, the quorum policy and the replay
nonce. `ExecuteTransaction` verifies a submitted signature set against the
digest of the transaction, checks the accumulated signing power against the
policy threshold and dispatches the payload to the action registered under
the transaction destination. Ordering of the signature set by ascending
signer address is how duplicate signers are ruled out.

The engine governs itself through the same mechanism. Actions registered
under the `gov/...` destinations decode an amendment message from the
payload and call back into the engine: governor weights and the quorum
policy can only change through an authorized call. A context condition,
readable through the `Authenticate` authenticator, marks calls that were
dispatched by the engine itself.

An `Initializer` can be instrumented to define the initial governors and
policy in a genesis file and build the engine on startup.
*/
package gov
