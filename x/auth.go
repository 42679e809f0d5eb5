/*
Package x holds the interfaces shared by the vault extension packages.

An Authenticator resolves the identity of the current caller from a
Context. The vault core never deals with signatures or keys, it asks
the Authenticator which addresses are authenticated for the call and
treats those as opaque identity tokens.
*/
package x

import (
	vault "github.com/iov-one/vault"
)

// Authenticator is an interface we can use to extract authentication
// info from the context. This should be passed into the constructor of
// the engine, so we can plug in another authentication system, rather
// than hard-coding one for all deployments.
type Authenticator interface {
	// GetAddresses reveals all authenticated identities. You may want
	// the MainSigner helper.
	GetAddresses(vault.Context) []vault.Address

	// HasAddress checks if the given address is authenticated.
	HasAddress(vault.Context, vault.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetAddresses combines all addresses from all Authenticators.
func (m MultiAuth) GetAddresses(ctx vault.Context) []vault.Address {
	var res []vault.Address
	for _, impl := range m.impls {
		if add := impl.GetAddresses(ctx); len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this address.
func (m MultiAuth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first authenticated address if any, otherwise
// nil.
func MainSigner(ctx vault.Context, auth Authenticator) vault.Address {
	addrs := auth.GetAddresses(ctx)
	if len(addrs) == 0 {
		return nil
	}
	return addrs[0]
}
