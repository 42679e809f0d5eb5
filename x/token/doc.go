/*
Package token implements a minimal fungible token with holder
balances and an issuer controlled pause switch, plus a settlement
backend paying vault transfers out of a pool holding.

A paused token refuses all movements. The refusal is declared, not a
fault: the settlement backend reports it with a false success flag so
the vault keeps the transfer pending and retryable.
*/
package token
