/*
Package vault defines the common interfaces that tie the custody vault
packages together, as well as implementations of the simplest shared
types (when interfaces would be too much overhead).

An identity is an opaque Address. Where an operation must know who is
calling, the caller is resolved from the Context by an x.Authenticator
implementation, so the authentication mechanism stays pluggable.

All state lives in a KVStore. Mutating operations run against a
CacheWrap of the store and only Write on success, which is what makes
every declared failure roll back to the prior state.
*/
package vault
