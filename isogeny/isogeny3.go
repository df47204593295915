package isogeny

import (
	"github.com/suhrikim/HuffSIDH/curve"
	"github.com/suhrikim/HuffSIDH/gf2"
)

// Isogeny3 computes and evaluates a single 3-isogeny. Call GenerateCurve
// once per walk row with the row's order-3 kernel point, then EvaluatePoint
// for every stack/basis point that needs to be pushed through that same
// step, mirroring the teacher's `phi := NewIsogeny3(); phi.GenerateCurve(...)`
// stateful-object idiom.
type Isogeny3 struct {
	f      *gf2.Field
	kernel curve.Point
	ready  bool
}

func NewIsogeny3(f *gf2.Field) *Isogeny3 {
	return &Isogeny3{f: f}
}

// GenerateCurve consumes a kernel point of exact order 3 and returns the
// codomain curve constants plus the probe basis (probeP, probeQ, probeQmP)
// pushed through the same step. cv is accepted but unused, matching
// Isogeny4 and Isogeny5's signature so walk.go can treat all three degrees
// through one interface.
func (phi *Isogeny3) GenerateCurve(cv curve.MontCoeffs, kernel, probeP, probeQ, probeQmP curve.Point) (curve.MontCoeffs, curve.Point, curve.Point, curve.Point) {
	phi.kernel = curve.Clone(phi.f, kernel)
	phi.ready = true
	cv, phiP, phiQ, phiR := recoverCodomain(phi.f, phi.eval, probeP, probeQ, probeQmP)
	return cv, phiP, phiQ, phiR
}

func (phi *Isogeny3) eval(p curve.Point) curve.Point {
	return evalOdd(phi.f, []curve.Point{phi.kernel}, p)
}

// EvaluatePoint pushes p through the isogeny generated by the last call to
// GenerateCurve.
func (phi *Isogeny3) EvaluatePoint(p curve.Point) curve.Point {
	return phi.eval(p)
}

// Coeffs exposes the raw kernel coordinates this step was generated from,
// matching spec's "coefficient bundle sufficient to push arbitrary points
// through ϕ" — two elements for degree 3 (see SPEC_FULL.md §5, item 3, on
// the coefficient-bundle length).
func (phi *Isogeny3) Coeffs() Coeffs {
	return Coeffs{phi.kernel.X, phi.kernel.Z}
}
