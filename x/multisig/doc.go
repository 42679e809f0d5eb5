/*
Package multisig implements the quorum gated custody engine.

A fixed set of authorized signers collectively controls a pool of
value. Any signer may propose a transfer, the transfer becomes
executable once enough distinct signers approved it, and execution
moves value exactly once through a pluggable settlement backend.

The package is built from three layered components. The Registry owns
the signer set and the quorum threshold. The Ledger owns the transfer
records and the per signer approval bookkeeping. The Engine composes
both with a SettlementBackend into the public operation surface and
enforces the caller authorization gate, the per instance mutual
exclusion domain and the write-on-success-only transaction discipline.
*/
package multisig
