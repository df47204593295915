package sidh

import (
	"github.com/suhrikim/HuffSIDH/curve"
	"github.com/suhrikim/HuffSIDH/gf2"
	"github.com/suhrikim/HuffSIDH/params"
	"github.com/suhrikim/HuffSIDH/walk"
)

// seedCoeffs returns the starting curve for a walk in the given model: the
// process-wide Montgomery seed directly, or the Huff seed converted once to
// its Montgomery equivalent (DESIGN.md's Open Question 5 resolution: Huff
// walks convert to Montgomery up front rather than carrying a second family
// of isogeny formulas).
func seedCoeffs(p *params.Params, model Model) curve.MontCoeffs {
	if model == Huff {
		A := p.SeedHuff.ToMontgomery(p.Fp2)
		return curve.NewMontCoeffs(p.Fp2, A, p.Fp2.One())
	}
	return p.SeedMontgomery
}

// ownBasis returns (ell, e, height, strategy, P, Q, Q-P) for the given
// party's own torsion, used as the kernel generator and as the probe basis
// pushed through the other party's walk.
func ownBasis(p *params.Params, party Party) (ell, e, height int, strat []int, gen [3]gf2.Elt) {
	if party == Alice {
		return p.ELLA, p.EA, p.HeightA, p.StrategyA, p.AGen
	}
	return p.ELLB, p.EB, p.HeightB, p.StrategyB, p.BGen
}

func otherBasis(p *params.Params, party Party) [3]gf2.Elt {
	if party == Alice {
		return p.BGen
	}
	return p.AGen
}

// keygenParty derives prv's own kernel point from its scalar and its own
// party's basis, walks the tree, and returns the resulting public
// key: the opposite party's basis pushed through prv's isogeny chain (spec
// §4.5's traverseTreePublicKeyA/B).
func keygenParty(prv *PrivateKey) *PublicKey {
	p := prv.params
	cv := seedCoeffs(p, prv.model)
	ell, _, height, strat, ownGen := ownBasis(p, prv.party)
	probe := otherBasis(p, prv.party)

	kernel := curve.Ladder3Pt(p.Fp2, cv, ownGen[0], ownGen[1], ownGen[2], prv.Scalar, bitLenOf(prv))

	probeP := curve.Point{X: probe[0], Z: p.Fp2.One()}
	probeQ := curve.Point{X: probe[1], Z: p.Fp2.One()}
	probeQmP := curve.Point{X: probe[2], Z: p.Fp2.One()}

	var aux *curve.Point
	if ell == 5 && prv.model == Montgomery {
		a := curve.Point{X: curve.Get2Torsion(p.Fp2, affineA(p.Fp2, cv)), Z: p.Fp2.One()}
		aux = &a
	}

	res := walk.Run(p.Fp2, ell, cv, strat, height, kernel, probeP, probeQ, probeQmP, aux)

	pub := NewPublicKey(p, prv.party, prv.model)
	pub.XP = curve.Affine(p.Fp2, res.PhiP)
	pub.XQ = curve.Affine(p.Fp2, res.PhiQ)
	pub.XQmP = curve.Affine(p.Fp2, res.PhiR)
	return pub
}

// agreeParty walks prv's own kernel through the curve described by pub (the
// other party's public key) and returns the shared j-invariant, encoded
// little-endian (spec §4.5's traverseTreeSharedKeyA/B, §4.6's "shared
// secret is the codomain j-invariant").
func agreeParty(prv *PrivateKey, pub *PublicKey) []byte {
	p := prv.params
	ell, _, height, strat, _ := ownBasis(p, prv.party)

	A := curve.RecoverA(p.Fp2, pub.XP, pub.XQ, pub.XQmP)
	cv := curve.NewMontCoeffs(p.Fp2, A, p.Fp2.One())

	kernel := curve.Ladder3Pt(p.Fp2, cv, pub.XP, pub.XQ, pub.XQmP, prv.Scalar, bitLenOf(prv))

	probeP := curve.Point{X: pub.XP, Z: p.Fp2.One()}
	probeQ := curve.Point{X: pub.XQ, Z: p.Fp2.One()}
	probeQmP := curve.Point{X: pub.XQmP, Z: p.Fp2.One()}

	var aux *curve.Point
	if ell == 5 && prv.model == Montgomery {
		a := curve.Point{X: curve.Get2Torsion(p.Fp2, affineA(p.Fp2, cv)), Z: p.Fp2.One()}
		aux = &a
	}

	res := walk.Run(p.Fp2, ell, cv, strat, height, kernel, probeP, probeQ, probeQmP, aux)

	j := curve.JInvariant(p.Fp2, res.Curve)
	out := make([]byte, 2*p.FieldBytes)
	p.Fp2.Encode(out, j)
	return out
}

// affineA recovers the affine A coefficient from cv's projective triple:
// A24plus + A24minus = 2A regardless of C, so this only halves the sum and
// never divides by C (every curve this package builds keeps C=1 — see the
// curve.NewMontCoeffs call sites in params and here, and curve.RecoverA,
// which also returns a C=1-normalized A).
func affineA(f *gf2.Field, cv curve.MontCoeffs) gf2.Elt {
	sum := f.New()
	f.Add(sum, cv.A24plus, cv.A24minus)
	inv2 := f.New()
	f.Inv(inv2, f.FromUint64(2))
	a := f.New()
	f.Mul(a, sum, inv2)
	return a
}

// bitLenOf returns the bit length Ladder3Pt should consume from prv.Scalar:
// the same bitLen secretSize derived the scalar's byte/mask layout from
// (params.go's SecretBytesA/B doc comment), recovered here from the mask's
// own used-bit count rather than recomputed from (E, ℓ) a second time.
func bitLenOf(prv *PrivateKey) int {
	mask := prv.mask()
	used := 0
	for mask != 0 {
		used++
		mask >>= 1
	}
	return 8*(len(prv.Scalar)-1) + used
}

// KeygenAliceMontgomery derives Alice's public key on the Montgomery curve
// from her private key (spec §4.6).
func KeygenAliceMontgomery(prv *PrivateKey) *PublicKey { return keygenParty(prv) }

// KeygenBobMontgomery derives Bob's public key on the Montgomery curve from
// his private key (spec §4.6).
func KeygenBobMontgomery(prv *PrivateKey) *PublicKey { return keygenParty(prv) }

// KeygenAliceHuff derives Alice's public key on the Huff curve from her
// private key (SPEC_FULL.md §4's Huff-model supplement).
func KeygenAliceHuff(prv *PrivateKey) *PublicKey { return keygenParty(prv) }

// KeygenBobHuff derives Bob's public key on the Huff curve from his private
// key (SPEC_FULL.md §4's Huff-model supplement).
func KeygenBobHuff(prv *PrivateKey) *PublicKey { return keygenParty(prv) }

// AgreeAliceMontgomery computes Alice's view of the shared secret given
// Bob's Montgomery public key (spec §4.6).
func AgreeAliceMontgomery(prv *PrivateKey, pub *PublicKey) ([]byte, error) {
	return agree(prv, pub)
}

// AgreeBobMontgomery computes Bob's view of the shared secret given Alice's
// Montgomery public key (spec §4.6).
func AgreeBobMontgomery(prv *PrivateKey, pub *PublicKey) ([]byte, error) {
	return agree(prv, pub)
}

// AgreeAliceHuff computes Alice's view of the shared secret given Bob's
// Huff public key (SPEC_FULL.md §4's Huff-model supplement).
func AgreeAliceHuff(prv *PrivateKey, pub *PublicKey) ([]byte, error) {
	return agree(prv, pub)
}

// AgreeBobHuff computes Bob's view of the shared secret given Alice's Huff
// public key (SPEC_FULL.md §4's Huff-model supplement).
func AgreeBobHuff(prv *PrivateKey, pub *PublicKey) ([]byte, error) {
	return agree(prv, pub)
}

// agree validates that prv and pub belong to opposite parties of the same
// prime and model before walking (spec §7).
func agree(prv *PrivateKey, pub *PublicKey) ([]byte, error) {
	if prv == nil || pub == nil {
		return nil, ErrIncompatibleKeys
	}
	if prv.party == pub.party || prv.params != pub.params || prv.model != pub.model {
		return nil, ErrIncompatibleKeys
	}
	return agreeParty(prv, pub), nil
}
