/*
Package errors implements custom error interfaces for the vault.

Error declarations should be generic and cover broad range of cases.
Each returned error instance can wrap a generic error declaration to
add more details.

This package provides a broad range of root errors. Extension packages
(for example x/vault) register their own roots with Register, using a
unique code range. This allows error equality tests with the Is method
regardless of how many times an error was wrapped on the way up.
*/
package errors
