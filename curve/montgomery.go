package curve

import "github.com/suhrikim/HuffSIDH/gf2"

// MontCoeffs holds the projective curve-constant representations the
// Montgomery formulas consume: A24plus = A+2C, A24minus = A-2C, C24 = 4C
// (spec §3's "Curve constants").
type MontCoeffs struct {
	A24plus, A24minus, C24 gf2.Elt
}

// NewMontCoeffs derives the (A+2C, A-2C, 4C) projective triple from an
// affine (A, C) pair.
func NewMontCoeffs(f *gf2.Field, A, C gf2.Elt) MontCoeffs {
	two := f.FromUint64(2)
	four := f.FromUint64(4)
	twoC := f.New()
	f.Mul(twoC, two, C)
	ap := f.New()
	f.Add(ap, A, twoC)
	am := f.New()
	f.Sub(am, A, twoC)
	c24 := f.New()
	f.Mul(c24, four, C)
	return MontCoeffs{A24plus: ap, A24minus: am, C24: c24}
}

// XDBL computes [2]P on the curve described by cv's (A24plus, C24), the
// standard Costello-Longa-Naehrig formula:
//
//	X2 = C24*(X-Z)^2*(X+Z)^2
//	Z2 = 4XZ*[C24*(X-Z)^2 + A24plus*4XZ]
func XDBL(f *gf2.Field, cv MontCoeffs, p Point) Point {
	t0 := f.New()
	f.Sub(t0, p.X, p.Z) // X-Z
	t1 := f.New()
	f.Add(t1, p.X, p.Z) // X+Z
	f.Sqr(t0, t0) // (X-Z)^2
	f.Sqr(t1, t1) // (X+Z)^2

	z2 := f.New()
	f.Mul(z2, cv.C24, t0) // C24*(X-Z)^2
	x2 := f.New()
	f.Mul(x2, t1, z2) // C24*(X-Z)^2*(X+Z)^2

	fourXZ := f.New()
	f.Sub(fourXZ, t1, t0) // 4XZ

	apTerm := f.New()
	f.Mul(apTerm, cv.A24plus, fourXZ)
	f.Add(z2, z2, apTerm)
	f.Mul(z2, z2, fourXZ)

	return Point{X: x2, Z: z2}
}

// XDBLe applies XDBL e times in place, the repeated-doubling primitive the
// walk engine uses for the degree-4 variant (spec §4.5: "the multiplier
// passed to xDBLe is 2m" for that variant).
func XDBLe(f *gf2.Field, cv MontCoeffs, p Point, e int) Point {
	r := p
	for i := 0; i < e; i++ {
		r = XDBL(f, cv, r)
	}
	return r
}

// XADD computes x(P+Q) from x(P), x(Q), and x(P-Q), the standard Montgomery
// differential addition shared by every x-only curve model in this package:
//
//	X3 = Zd*[(Xp-Zp)(Xq+Zq) + (Xp+Zp)(Xq-Zq)]^2
//	Z3 = Xd*[(Xp-Zp)(Xq+Zq) - (Xp+Zp)(Xq-Zq)]^2
func XADD(f *gf2.Field, p, q, diff Point) Point {
	da := f.New()
	f.Sub(da, p.X, p.Z) // Xp-Zp
	db := f.New()
	f.Add(db, q.X, q.Z) // Xq+Zq
	cb := f.New()
	f.Add(cb, p.X, p.Z) // Xp+Zp
	da2 := f.New()
	f.Sub(da2, q.X, q.Z) // Xq-Zq

	t0 := f.New()
	f.Mul(t0, da, db)
	t1 := f.New()
	f.Mul(t1, cb, da2)

	add := f.New()
	f.Add(add, t0, t1)
	f.Sqr(add, add)
	sub := f.New()
	f.Sub(sub, t0, t1)
	f.Sqr(sub, sub)

	x3 := f.New()
	f.Mul(x3, diff.Z, add)
	z3 := f.New()
	f.Mul(z3, diff.X, sub)

	return Point{X: x3, Z: z3}
}

// XMulSmall computes [n]P for a small public integer n using the standard
// single-coordinate Montgomery ladder built only from XDBL and XADD: this
// module uses it in place of the teacher's direct degree-specific xTPL/x5P
// closed forms, since those rely on per-degree algebra this module could
// not ground in the retrieved pack (see DESIGN.md, Open Question 3).
func XMulSmall(f *gf2.Field, cv MontCoeffs, p Point, n uint64) Point {
	if n == 0 {
		return Infinity(f)
	}
	r0 := Infinity(f)
	r1 := Clone(f, p)
	bitLen := 64 - leadingZeros64(n)
	for i := bitLen - 1; i >= 0; i-- {
		bit := (n >> uint(i)) & 1
		mask := uint64(0) - bit
		CondSwap(f, r0, r1, mask)
		r1 = XADD(f, r0, r1, p)
		r0 = XDBL(f, cv, r0)
		CondSwap(f, r0, r1, mask)
	}
	return r0
}

func leadingZeros64(n uint64) int {
	count := 0
	for i := 63; i >= 0; i-- {
		if (n>>uint(i))&1 == 1 {
			break
		}
		count++
	}
	return count
}

// XTPLe applies tripling e times via XMulSmall(.., 3).
func XTPLe(f *gf2.Field, cv MontCoeffs, p Point, e int) Point {
	r := p
	for i := 0; i < e; i++ {
		r = XMulSmall(f, cv, r, 3)
	}
	return r
}

// X5Pe applies quintupling e times via XMulSmall(.., 5).
func X5Pe(f *gf2.Field, cv MontCoeffs, p Point, e int) Point {
	r := p
	for i := 0; i < e; i++ {
		r = XMulSmall(f, cv, r, 5)
	}
	return r
}

// RecoverA recovers the Montgomery coefficient A (with C normalized to 1)
// of the curve carrying points with x-coordinates xP, xQ, xQmP = x(P-Q),
// the standard three-point formula (spec §4.3's get_A):
//
//	A = (1 - xP*xQ - xP*xQmP - xQ*xQmP)^2 / (4*xP*xQ*xQmP) - xP - xQ - xQmP
func RecoverA(f *gf2.Field, xP, xQ, xQmP gf2.Elt) gf2.Elt {
	pq := f.New()
	f.Mul(pq, xP, xQ)
	pr := f.New()
	f.Mul(pr, xP, xQmP)
	qr := f.New()
	f.Mul(qr, xQ, xQmP)

	sum := f.New()
	f.Add(sum, pq, pr)
	f.Add(sum, sum, qr)
	one := f.One()
	num := f.New()
	f.Sub(num, one, sum)
	f.Sqr(num, num)

	denom := f.New()
	f.Mul(denom, pq, xQmP)
	four := f.FromUint64(4)
	f.Mul(denom, denom, four)
	denomInv := f.New()
	f.Inv(denomInv, denom)

	a := f.New()
	f.Mul(a, num, denomInv)
	f.Sub(a, a, xP)
	f.Sub(a, a, xQ)
	f.Sub(a, a, xQmP)
	return a
}

// Get2Torsion returns the x-coordinate of a non-identity point of order 2
// on the Montgomery curve y^2=x^3+Ax^2+x (C normalized to 1): a root of
// x^2+Ax+1=0, i.e. x = (-A + sqrt(A^2-4))/2 (spec §4.3's get_2torsion,
// used by package sidh to seed the auxiliary point carried through
// degree-5 Montgomery walks).
func Get2Torsion(f *gf2.Field, A gf2.Elt) gf2.Elt {
	a2 := f.New()
	f.Sqr(a2, A)
	four := f.FromUint64(4)
	disc := f.New()
	f.Sub(disc, a2, four)
	root := f.New()
	f.Sqrt(root, disc)

	negA := f.New()
	f.Neg(negA, A)
	numer := f.New()
	f.Add(numer, negA, root)

	two := f.FromUint64(2)
	twoInv := f.New()
	f.Inv(twoInv, two)
	x := f.New()
	f.Mul(x, numer, twoInv)
	return x
}

// JInvariant computes the j-invariant of the curve with projective
// constants (A24plus=A+2C, A24minus=A-2C) via the standard formula
// j = 256*(A^2-3C^2)^3 / (C^4*(A^2-4C^2)) (spec §4.6), recovering affine
// A,C from the projective pair first.
func JInvariant(f *gf2.Field, cv MontCoeffs) gf2.Elt {
	two := f.FromUint64(2)
	twoInv := f.New()
	f.Inv(twoInv, two)
	four := f.FromUint64(4)
	fourInv := f.New()
	f.Inv(fourInv, four)

	A := f.New()
	f.Add(A, cv.A24plus, cv.A24minus)
	f.Mul(A, A, twoInv)
	C := f.New()
	f.Mul(C, cv.C24, fourInv)

	return jInvariantAffine(f, A, C)
}

func jInvariantAffine(f *gf2.Field, A, C gf2.Elt) gf2.Elt {
	a2 := f.New()
	f.Sqr(a2, A)
	c2 := f.New()
	f.Sqr(c2, C)

	three := f.FromUint64(3)
	threeC2 := f.New()
	f.Mul(threeC2, three, c2)
	t1 := f.New()
	f.Sub(t1, a2, threeC2) // A^2-3C^2
	t1cube := f.New()
	f.Sqr(t1cube, t1)
	f.Mul(t1cube, t1cube, t1) // (A^2-3C^2)^3

	four := f.FromUint64(4)
	fourC2 := f.New()
	f.Mul(fourC2, four, c2)
	t2 := f.New()
	f.Sub(t2, a2, fourC2) // A^2-4C^2

	c4 := f.New()
	f.Sqr(c4, c2)
	denom := f.New()
	f.Mul(denom, c4, t2)
	denomInv := f.New()
	f.Inv(denomInv, denom)

	c256 := f.FromUint64(256)
	num := f.New()
	f.Mul(num, c256, t1cube)

	j := f.New()
	f.Mul(j, num, denomInv)
	return j
}
