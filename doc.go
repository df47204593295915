// Package HuffSIDH implements the core of a supersingular-isogeny
// Diffie-Hellman key exchange: field arithmetic over GF(p) and GF(p²),
// x-only elliptic-curve arithmetic on the Montgomery and Huff models, and a
// strategy-driven walk engine that composes chains of small-degree isogenies
// under a secret scalar.
//
// Two prime families are supported: a 610-bit prime
// p = 2^67·3^175·5^119 - 1 (Alice walks degree-3, Bob walks degree-5) and a
// 751-bit prime p = 2^372·3^239 - 1 (Alice walks degree-4, Bob walks
// degree-3). See package params for the concrete tables.
//
// The KEM layer built atop this exchange (hashing, serialization framework,
// entropy source, benchmark harness, assembly kernels) is out of scope; see
// package sidh for the raw key-exchange facade this module does provide.
package HuffSIDH
