/*
Package vaulttest provides mocks and helpers for testing vault
components: deterministic and random addresses, authenticator stubs,
a recording event sink, a scriptable settlement backend and store
constructors.
*/
package vaulttest
