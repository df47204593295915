// Package gf2 implements the quadratic extension GF(p²) = GF(p)[i]/(i²+1)
// used for every curve coordinate and coefficient in this module, built
// directly on package gf. It generalizes the teacher's fixed-width Fp2 type
// (arith.go) over an arbitrary *gf.Field.
package gf2

import "github.com/suhrikim/HuffSIDH/gf"

// Elt is a + b·i, i²=-1, both components in Montgomery form with respect
// to the underlying Field.
type Elt struct {
	A, B gf.Elt
}

// Field wraps a *gf.Field with GF(p²) operations.
type Field struct {
	Fp *gf.Field
}

func NewField(fp *gf.Field) *Field { return &Field{Fp: fp} }

func (f *Field) New() Elt { return Elt{A: f.Fp.New(), B: f.Fp.New()} }

func (f *Field) Clone(x Elt) Elt { return Elt{A: f.Fp.Clone(x.A), B: f.Fp.Clone(x.B)} }

// Zero, One return the additive and multiplicative identities.
func (f *Field) Zero() Elt { return f.New() }
func (f *Field) One() Elt  { return Elt{A: f.Fp.Clone(f.Fp.One), B: f.Fp.New()} }

// FromUint64 builds a+0i from a small public integer a.
func (f *Field) FromUint64(a uint64) Elt {
	return Elt{A: f.Fp.FromUint64(a), B: f.Fp.New()}
}

func (f *Field) Add(z, x, y Elt) {
	f.Fp.Add(z.A, x.A, y.A)
	f.Fp.Add(z.B, x.B, y.B)
}

func (f *Field) Sub(z, x, y Elt) {
	f.Fp.Sub(z.A, x.A, y.A)
	f.Fp.Sub(z.B, x.B, y.B)
}

func (f *Field) Neg(z, x Elt) {
	f.Fp.Neg(z.A, x.A)
	f.Fp.Neg(z.B, x.B)
}

func (f *Field) Correct(x Elt) {
	f.Fp.Correct(x.A)
	f.Fp.Correct(x.B)
}

// Mul computes z = x*y = (xA*yA - xB*yB) + (xA*yB + xB*yA)i using the
// three-multiplication Karatsuba trick spec §4.2 specifies: ac, bd, and
// (xA+xB)(yA+yB)-ac-bd in place of the fourth product.
func (f *Field) Mul(z, x, y Elt) {
	ac := f.Fp.New()
	bd := f.Fp.New()
	f.Fp.Mul(ac, x.A, y.A)
	f.Fp.Mul(bd, x.B, y.B)

	sa := f.Fp.New()
	sb := f.Fp.New()
	f.Fp.Add(sa, x.A, x.B)
	f.Fp.Add(sb, y.A, y.B)
	cross := f.Fp.New()
	f.Fp.Mul(cross, sa, sb)
	f.Fp.Sub(cross, cross, ac)
	f.Fp.Sub(cross, cross, bd)

	real := f.Fp.New()
	f.Fp.Sub(real, ac, bd)

	copy(z.A, real)
	copy(z.B, cross)
}

// Sqr computes z = x².
func (f *Field) Sqr(z, x Elt) { f.Mul(z, x, x) }

// normSq computes n = xA² + xB², the field norm used by Inv.
func (f *Field) normSq(n gf.Elt, x Elt) {
	a2 := f.Fp.New()
	b2 := f.Fp.New()
	f.Fp.Sqr(a2, x.A)
	f.Fp.Sqr(b2, x.B)
	f.Fp.Add(n, a2, b2)
}

// Inv computes z = x^-1 = (xA - xB·i) / (xA²+xB²), costing one Fp inversion
// (spec §4.2).
func (f *Field) Inv(z, x Elt) {
	n := f.Fp.New()
	f.normSq(n, x)
	ninv := f.Fp.New()
	f.Fp.Inv(ninv, n)

	f.Fp.Mul(z.A, x.A, ninv)
	negB := f.Fp.New()
	f.Fp.Neg(negB, x.B)
	f.Fp.Mul(z.B, negB, ninv)
}

// Sqrt computes a square root of x when one exists, for the p≡3(mod4)
// fields this module targets, via the standard Fp2 square-root reduction:
// compute the candidate through the norm and, when that candidate's real
// part has no square root in Fp, switch to the other root form with a
// branch-free selection.
func (f *Field) Sqrt(z, x Elt) {
	// delta = xA^2 + xB^2, find its Fp sqrt (since p ≡ 3 mod 4, delta is
	// automatically the square of the complex modulus when x is a square).
	n := f.Fp.New()
	f.normSq(n, x)
	deltaRoot := f.Fp.New()
	f.Fp.Sqrt(deltaRoot, n)

	// candidate real part r with 2r^2 = xA + deltaRoot
	two := f.Fp.FromUint64(2)
	twoInv := f.Fp.New()
	f.Fp.Inv(twoInv, two)
	sum := f.Fp.New()
	f.Fp.Add(sum, x.A, deltaRoot)
	rr := f.Fp.New()
	f.Fp.Mul(rr, sum, twoInv)
	r := f.Fp.New()
	f.Fp.Sqrt(r, rr)

	// rr is a square in Fp exactly when r^2 == rr. Otherwise -rr is one
	// (p ≡ 3 mod 4) and the root is b/(2t) + t·i with t = sqrt(-rr): t takes
	// r's place below and the two components are swapped at the end.
	t := f.Fp.New()
	f.Fp.Neg(t, rr)
	f.Fp.Sqrt(t, t)
	d := f.Fp.New()
	f.Fp.Sqr(d, r)
	f.Fp.Sub(d, d, rr)
	f.Fp.Correct(d)
	var acc uint64
	for _, w := range d {
		acc |= w
	}
	mask := uint64(int64(acc|-acc) >> 63)
	f.Fp.Select(r, t, r, mask)

	rInv := f.Fp.New()
	f.Fp.Inv(rInv, r)
	halfB := f.Fp.New()
	f.Fp.Mul(halfB, x.B, twoInv)
	im := f.Fp.New()
	f.Fp.Mul(im, halfB, rInv)

	copy(z.A, r)
	copy(z.B, im)
	f.Fp.CondSwap(z.A, z.B, mask)
}

// IsZero reports whether x is the zero element.
func (f *Field) IsZero(x Elt) bool { return f.Fp.IsZero(x.A) && f.Fp.IsZero(x.B) }

// Equal is a non-constant-time equality predicate for tests only (spec
// §4.1's restriction on gf.Field.Equal applies equally here).
func (f *Field) Equal(x, y Elt) bool { return f.Fp.Equal(x.A, y.A) && f.Fp.Equal(x.B, y.B) }

// Select sets z = x if mask is all-ones, else z = y.
func (f *Field) Select(z, x, y Elt, mask uint64) {
	f.Fp.Select(z.A, x.A, y.A, mask)
	f.Fp.Select(z.B, x.B, y.B, mask)
}

// CondSwap conditionally swaps x and y in place when mask is all-ones,
// mirroring the teacher's condSwap (arith.go) over full Fp2 elements.
func (f *Field) CondSwap(x, y Elt, mask uint64) {
	f.Fp.CondSwap(x.A, y.A, mask)
	f.Fp.CondSwap(x.B, y.B, mask)
}

// Encode writes x's canonical encoding (real component, then imaginary) to
// out, which must be exactly 2*elemBytes bytes (spec §6).
func (f *Field) Encode(out []byte, x Elt) {
	half := len(out) / 2
	f.Fp.Encode(out[:half], x.A)
	f.Fp.Encode(out[half:], x.B)
}

// Decode is the inverse of Encode.
func (f *Field) Decode(in []byte) Elt {
	half := len(in) / 2
	return Elt{A: f.Fp.Decode(in[:half]), B: f.Fp.Decode(in[half:])}
}
