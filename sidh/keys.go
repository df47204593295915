// Package sidh is the raw key-exchange facade (spec §4.6, SPEC_FULL.md §4's
// "8-function key-exchange facade"): PrivateKey/PublicKey types and the
// keygen/agree operations for both parties, over both the Montgomery and
// Huff curve models, parameterized by a params.Params.
//
// The type and method shapes below follow the teacher's sike.go facade
// (NewPrivateKey/NewPublicKey, Generate/GeneratePublicKey/DeriveSecret,
// Export/Import/Size) generalized to carry a Party and a Model rather than
// the teacher's single bit-flag KeyVariant, since this module's walk is
// already generic over both axes (see walk.Run, isogeny.NewIsogeny3/4/5).
// The KEM layer the teacher builds on top of this facade (message
// encapsulation, hashing, ciphertext framing) is out of scope; see
// SPEC_FULL.md §4's Non-goals.
package sidh

import (
	"errors"
	"io"

	"github.com/suhrikim/HuffSIDH/gf2"
	"github.com/suhrikim/HuffSIDH/internal/zeroize"
	"github.com/suhrikim/HuffSIDH/params"
)

// Party distinguishes which side of the exchange a key belongs to: each
// party walks its own isogeny degree and owns its own basis (spec §1, §4.6).
type Party int

const (
	Alice Party = iota
	Bob
)

// Model selects which curve the walk is carried out on (spec §4.5's two
// walk entry points; SPEC_FULL.md §4's Huff-model supplement).
type Model int

const (
	Montgomery Model = iota
	Huff
)

var (
	// ErrEntropyExhausted wraps a failure reading from the caller-supplied
	// entropy source during key generation (spec §7).
	ErrEntropyExhausted = errors.New("sidh: entropy source exhausted")
	// ErrBufferShape is returned by Import when the input is not exactly
	// Size() bytes long (spec §6, §7).
	ErrBufferShape = errors.New("sidh: input buffer has the wrong size")
	// ErrIncompatibleKeys is returned by the Agree* functions when prv or
	// pub is nil, or when they belong to the same party, to different
	// primes, or to different curve models (spec §4.6, §7).
	ErrIncompatibleKeys = errors.New("sidh: public and private keys are incompatible")
)

// PublicKey is a party's pushed-forward probe basis (x_P, x_Q, x_{P-Q}) on
// its own codomain curve, encoded as three GF(p²) elements (spec §6).
type PublicKey struct {
	params *params.Params
	party  Party
	model  Model

	XP, XQ, XQmP gf2.Elt
}

// NewPublicKey allocates a public key for the given prime, party, and
// model; its coordinates are zero until Import or a keygen operation fills
// them in.
func NewPublicKey(p *params.Params, party Party, model Model) *PublicKey {
	return &PublicKey{
		params: p,
		party:  party,
		model:  model,
		XP:     p.Fp2.New(),
		XQ:     p.Fp2.New(),
		XQmP:   p.Fp2.New(),
	}
}

// Size returns the encoded length of the public key in bytes: three GF(p²)
// elements, each 2*FieldBytes (spec §6).
func (pub *PublicKey) Size() int {
	return 3 * 2 * pub.params.FieldBytes
}

// Export encodes the public key's three coordinates, real component then
// imaginary, P then Q then Q-P (spec §6).
func (pub *PublicKey) Export() []byte {
	out := make([]byte, pub.Size())
	elemSz := 2 * pub.params.FieldBytes
	pub.params.Fp2.Encode(out[0:elemSz], pub.XP)
	pub.params.Fp2.Encode(out[elemSz:2*elemSz], pub.XQ)
	pub.params.Fp2.Encode(out[2*elemSz:3*elemSz], pub.XQmP)
	return out
}

// Import overwrites the public key's coordinates with those encoded in
// input, which must be exactly Size() bytes. It performs no validation that
// the coordinates lie on a valid curve or have the expected order (spec §3
// Invariant (i)).
func (pub *PublicKey) Import(input []byte) error {
	if len(input) != pub.Size() {
		return ErrBufferShape
	}
	elemSz := 2 * pub.params.FieldBytes
	pub.XP = pub.params.Fp2.Decode(input[0:elemSz])
	pub.XQ = pub.params.Fp2.Decode(input[elemSz : 2*elemSz])
	pub.XQmP = pub.params.Fp2.Decode(input[2*elemSz : 3*elemSz])
	return nil
}

// PrivateKey holds a party's masked secret scalar (spec §3 "Secret
// scalar", §6's wire layout).
type PrivateKey struct {
	params *params.Params
	party  Party
	model  Model

	Scalar []byte
}

// NewPrivateKey allocates a private key sized for the given prime and
// party; Scalar is zero until Generate or Import fills it in.
func NewPrivateKey(p *params.Params, party Party, model Model) *PrivateKey {
	n := p.SecretBytesA
	if party == Bob {
		n = p.SecretBytesB
	}
	return &PrivateKey{
		params: p,
		party:  party,
		model:  model,
		Scalar: make([]byte, n),
	}
}

// Size returns the encoded length of the private key's scalar in bytes.
func (prv *PrivateKey) Size() int {
	return len(prv.Scalar)
}

// Export returns a copy of the private key's encoded scalar.
func (prv *PrivateKey) Export() []byte {
	out := make([]byte, len(prv.Scalar))
	copy(out, prv.Scalar)
	return out
}

// Import overwrites the private key's scalar with input, which must be
// exactly Size() bytes.
func (prv *PrivateKey) Import(input []byte) error {
	if len(input) != prv.Size() {
		return ErrBufferShape
	}
	copy(prv.Scalar, input)
	return nil
}

// mask returns this party's top-byte mask (spec §6).
func (prv *PrivateKey) mask() byte {
	if prv.party == Alice {
		return prv.params.MaskA
	}
	return prv.params.MaskB
}

// Generate fills the private key with fresh entropy from rand, masking the
// top byte so the scalar always lies in [0, 2^bitLen), where bitLen is the
// bit length of the party's torsion order (spec §3, §6). On read
// failure the partially-filled scalar is zeroized before returning.
func (prv *PrivateKey) Generate(rand io.Reader) error {
	if _, err := io.ReadFull(rand, prv.Scalar); err != nil {
		zeroize.Bytes(prv.Scalar)
		return ErrEntropyExhausted
	}
	prv.Scalar[len(prv.Scalar)-1] &= prv.mask()
	return nil
}
