package isogeny

import (
	"github.com/suhrikim/HuffSIDH/curve"
	"github.com/suhrikim/HuffSIDH/gf2"
)

// Isogeny4 computes a 4-isogeny as the composition of two 2-isogenies: a
// cyclic kernel ⟨K⟩ of order 4 contains the order-2 subgroup generated by
// T=[2]K, and ker(φ_{φ_T(K)} ∘ φ_T) = φ_T⁻¹({O, φ_T(K)}) = {O,T,K,3K} = ⟨K⟩,
// so chaining the degree-2 quotient map (eval2) with itself is
// exactly the degree-4 isogeny with kernel ⟨K⟩ (DESIGN.md, Open Question 4).
// This sidesteps needing the reference's fused get_4_isog/eval_4_isog
// closed form, which this module could not ground in the retrieved pack.
type Isogeny4 struct {
	f           *gf2.Field
	firstKernel curve.Point // T = [2]K, kernel of the first degree-2 step
	secondKernel curve.Point // φ_T(K), kernel of the second degree-2 step
}

func NewIsogeny4(f *gf2.Field) *Isogeny4 {
	return &Isogeny4{f: f}
}

// GenerateCurve consumes a kernel point of exact order 4 on the curve
// described by cv and returns the codomain curve constants plus the probe
// basis pushed through both composed degree-2 steps.
func (phi *Isogeny4) GenerateCurve(cv curve.MontCoeffs, kernel, probeP, probeQ, probeQmP curve.Point) (curve.MontCoeffs, curve.Point, curve.Point, curve.Point) {
	f := phi.f
	phi.firstKernel = curve.XDBL(f, cv, kernel) // T = [2]K, order 2
	phi.secondKernel = eval2(f, phi.firstKernel, kernel) // φ_T(K), order 2

	newCv, phiP, phiQ, phiR := recoverCodomain(f, phi.eval, probeP, probeQ, probeQmP)
	return newCv, phiP, phiQ, phiR
}

func (phi *Isogeny4) eval(p curve.Point) curve.Point {
	q := eval2(phi.f, phi.firstKernel, p)
	return eval2(phi.f, phi.secondKernel, q)
}

// EvaluatePoint pushes p through the isogeny generated by the last call to
// GenerateCurve.
func (phi *Isogeny4) EvaluatePoint(p curve.Point) curve.Point {
	return phi.eval(p)
}

// Coeffs exposes the two chained degree-2 kernels' raw coordinates.
func (phi *Isogeny4) Coeffs() Coeffs {
	return Coeffs{phi.firstKernel.X, phi.firstKernel.Z, phi.secondKernel.X, phi.secondKernel.Z}
}
