package vaulttest

import (
	"context"
	"crypto/rand"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/x"
)

// Auth is a mock x.Authenticator that authenticates a fixed set of
// addresses regardless of the context content. Use Signer for the
// common single identity case or Signers for many.
type Auth struct {
	// Signer is the single authenticated identity. It is ignored when
	// Signers is set.
	Signer vault.Address
	// Signers is the full list of authenticated identities.
	Signers []vault.Address
}

var _ x.Authenticator = (*Auth)(nil)

func (a *Auth) GetAddresses(vault.Context) []vault.Address {
	if len(a.Signers) > 0 {
		return a.Signers
	}
	if a.Signer == nil {
		return nil
	}
	return []vault.Address{a.Signer}
}

func (a *Auth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if s.Equals(addr) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock x.Authenticator that reads the authenticated
// identities from the context. The same instance must be used to both
// set and get the addresses.
type CtxAuth struct {
	// Key under which the addresses are stored in the context.
	Key string
}

var _ x.Authenticator = (*CtxAuth)(nil)

type ctxAuthKey string

// SetSigners returns a context authenticating the given addresses.
func (a *CtxAuth) SetSigners(ctx vault.Context, addrs ...vault.Address) vault.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), addrs)
}

func (a *CtxAuth) GetAddresses(ctx vault.Context) []vault.Address {
	addrs, ok := ctx.Value(ctxAuthKey(a.Key)).([]vault.Address)
	if !ok {
		return nil
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if s.Equals(addr) {
			return true
		}
	}
	return false
}

// RandomAddress returns a random identity address. It never fails.
func RandomAddress() vault.Address {
	addr := make(vault.Address, vault.AddressLength)
	if _, err := rand.Read(addr); err != nil {
		panic(err)
	}
	return addr
}

// SequentialAddress returns a deterministic address derived from n.
// Handy for tests that must be reproducible.
func SequentialAddress(n byte) vault.Address {
	addr := make(vault.Address, vault.AddressLength)
	addr[0] = 1
	addr[vault.AddressLength-1] = n
	return addr
}
