/*

Package governance defines the building blocks shared by every package in
this repository: Condition/Address identity, the quorum policy arithmetic,
weight bookkeeping, the caller context and the action dispatch surface.
Look into this package to get a brief overview of the interfaces the engine
in gov is built from.

*/

package governance
