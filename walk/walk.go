// Package walk implements the strategy-driven isogeny tree traversal (spec
// §4.5, "the heart of the system"): starting from a kernel point of order
// ℓ^h, it descends the tree, computing one codomain curve per leaf and
// evaluating the carried probe basis (and every point still "in flight")
// through it, until the kernel has been consumed down to the identity.
//
// spec §4.5 describes this traversal as an explicit stack of (point, index)
// pairs threaded through a row-major loop. This package instead expresses
// the identical algorithm as direct recursion on strategy.Optimal's own
// split: a subtree of remaining height h splits at b := strat[h] into a
// size-b subtree (processed first) and a size-(h-b) subtree (processed
// second, after the first has pushed every point riding along — including
// the second subtree's own not-yet-reduced root — through b isogenies). The
// recursion's cost is exactly cost(b) + cost(h-b) + b·evalCost +
// (h-b)·mulCost, the same recurrence strategy.Optimal minimises, so the two
// formulations compute the same sequence of isogeny steps; recursion only
// replaces the explicit stack slice with the Go call stack, which is the
// more idiomatic rendition of a bounded-depth tree walk (depth ≤ h ≤ 372
// here, nowhere near stack-exhaustion territory).
package walk

import (
	"github.com/suhrikim/HuffSIDH/curve"
	"github.com/suhrikim/HuffSIDH/gf2"
	"github.com/suhrikim/HuffSIDH/isogeny"
)

// isogenyStep is the common surface Isogeny3/4/5 share, letting the
// traversal below stay generic over ℓ.
type isogenyStep interface {
	GenerateCurve(cv curve.MontCoeffs, kernel, probeP, probeQ, probeQmP curve.Point) (curve.MontCoeffs, curve.Point, curve.Point, curve.Point)
	EvaluatePoint(p curve.Point) curve.Point
}

func newStep(f *gf2.Field, ell int) isogenyStep {
	switch ell {
	case 3:
		return isogeny.NewIsogeny3(f)
	case 4:
		return isogeny.NewIsogeny4(f)
	case 5:
		return isogeny.NewIsogeny5(f)
	default:
		panic("walk: unsupported isogeny degree")
	}
}

// mulStep applies ℓ^m to p on the curve cv. The degree-4 variant walks half
// the height per row and doubles twice per step (spec §4.5: "the multiplier
// passed to xDBLe is 2m").
func mulStep(f *gf2.Field, cv curve.MontCoeffs, ell int, p curve.Point, m int) curve.Point {
	if m == 0 {
		return curve.Clone(f, p)
	}
	switch ell {
	case 3:
		return curve.XTPLe(f, cv, p, m)
	case 4:
		return curve.XDBLe(f, cv, p, 2*m)
	case 5:
		return curve.X5Pe(f, cv, p, m)
	default:
		panic("walk: unsupported isogeny degree")
	}
}

// state is the data threaded through every level of the recursion: the
// current codomain curve, the probe basis pushed through every step so far,
// the optional auxiliary point (degree-5 Montgomery), and the points still
// awaiting their own subtree (each a not-yet-consumed kernel from an
// ancestor call, evaluated alongside the basis at every leaf below it).
type state struct {
	f     *gf2.Field
	ell   int
	cv    curve.MontCoeffs
	phiP  curve.Point
	phiQ  curve.Point
	phiR  curve.Point
	aux   *curve.Point
	carry []curve.Point
	strat []int
}

// Result is the terminal curve and the probe basis after pushing it through
// every step of the walk; Aux holds the final auxiliary-point state if one
// was carried in (degree-5 Montgomery only — see DESIGN.md's refinement of
// Open Question 2).
type Result struct {
	Curve            curve.MontCoeffs
	PhiP, PhiQ, PhiR curve.Point
	Aux              *curve.Point
}

// Run traverses the tree of height `height` for a kernel point `kernel` of
// order ℓ^height on curve cv, using strategy `strat` (spec §4.5's s[1..h-1],
// here strategy.Optimal's table indexed by remaining subtree height). probeP/
// probeQ/probeQmP is the basis pushed through every step: for key generation
// this is the other party's public basis (the caller wants the pushed
// result); for agreement it may be any fixed basis on the starting curve
// purely to let isogeny.GenerateCurve recover the codomain's A coefficient
// (the caller discards the pushed result). aux, if non-nil, is pushed
// through every step alongside the basis (the degree-5 Montgomery auxiliary
// 2-torsion point).
func Run(f *gf2.Field, ell int, cv curve.MontCoeffs, strat []int, height int, kernel curve.Point, probeP, probeQ, probeQmP curve.Point, aux *curve.Point) Result {
	var auxCur *curve.Point
	if aux != nil {
		c := curve.Clone(f, *aux)
		auxCur = &c
	}

	st := state{
		f:     f,
		ell:   ell,
		cv:    cv,
		phiP:  curve.Clone(f, probeP),
		phiQ:  curve.Clone(f, probeQ),
		phiR:  curve.Clone(f, probeQmP),
		aux:   auxCur,
		strat: strat,
	}

	st, _ = descend(st, curve.Clone(f, kernel), height)

	return Result{Curve: st.cv, PhiP: st.phiP, PhiQ: st.phiQ, PhiR: st.phiR, Aux: st.aux}
}

// descend processes the subtree of remaining height h rooted at r (a point
// of order ℓ^h on st.cv), returning the updated state and r's own image
// (always the zero/identity point in practice, since r is fully consumed by
// the last leaf — returned only so the h==1 base case has a uniform shape
// with the recursive case).
func descend(st state, r curve.Point, h int) (state, curve.Point) {
	if h == 1 {
		step := newStep(st.f, st.ell)
		newCv, newP, newQ, newR := step.GenerateCurve(st.cv, r, st.phiP, st.phiQ, st.phiR)
		st.cv, st.phiP, st.phiQ, st.phiR = newCv, newP, newQ, newR
		if st.aux != nil {
			pushed := step.EvaluatePoint(*st.aux)
			st.aux = &pushed
		}
		for i := range st.carry {
			st.carry[i] = step.EvaluatePoint(st.carry[i])
		}
		return st, step.EvaluatePoint(r)
	}

	b := st.strat[h]
	d := h - b

	t := mulStep(st.f, st.cv, st.ell, r, d)

	st.carry = append(st.carry, r)
	st, _ = descend(st, t, b)

	newR := st.carry[len(st.carry)-1]
	st.carry = st.carry[:len(st.carry)-1]

	return descend(st, newR, d)
}
