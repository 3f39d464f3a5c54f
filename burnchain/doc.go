// Package burnchain contains the chain-agnostic types and parameters by
// which a hyperchain node observes its underlying burn chain.
//
// An external indexer retrieves raw blocks from the burn chain and reduces
// each of them to a BurnchainBlock, a closed sum over the supported
// burn-chain encodings. Today there is a single variant: operations replayed
// from the event stream of a layer-1 Stacks node. A Burnchain bundle
// (genesis parameters plus PoX constants) then folds each block's operations
// into one BurnchainStateTransition, which is handed to the sortition engine
// to drive leader election for the hyperchain.
//
// Everything in this package is computation-only. Values are immutable once
// constructed and safe for concurrent reads; reconfiguration means building
// a new value, never mutating a shared one.
package burnchain
