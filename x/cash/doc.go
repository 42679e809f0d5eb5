/*
Package cash keeps native currency balances and settles vault
transfers out of a pool wallet.

The Controller owns all wallet mutations. The Backend adapts the
Controller to the settlement interface the vault engine expects: the
vault pool is one wallet, executing a transfer moves value from the
pool wallet to the recipient wallet.
*/
package cash
