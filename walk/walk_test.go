package walk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suhrikim/HuffSIDH/curve"
	"github.com/suhrikim/HuffSIDH/gf"
	"github.com/suhrikim/HuffSIDH/gf2"
	"github.com/suhrikim/HuffSIDH/isogeny"
	"github.com/suhrikim/HuffSIDH/strategy"
	"github.com/suhrikim/HuffSIDH/walk"
)

var smallPrime = []uint64{0x1FFFFFFFFFFFFFFF} // 2^61 - 1

func testField(t *testing.T) *gf2.Field {
	t.Helper()
	return gf2.NewField(gf.NewField(smallPrime))
}

func samplePoint(f *gf2.Field, x uint64) curve.Point {
	return curve.Point{X: f.FromUint64(x), Z: f.One()}
}

// A height-1 walk is, by construction, a single isogeny step: Run must
// reproduce exactly what calling isogeny.NewIsogeny3 directly produces.
func TestRunHeightOneMatchesDirectIsogenyStep(t *testing.T) {
	f := testField(t)
	cv := curve.NewMontCoeffs(f, f.FromUint64(6), f.One())
	kernel := samplePoint(f, 7)
	probeP := samplePoint(f, 11)
	probeQ := samplePoint(f, 13)
	probeQmP := samplePoint(f, 17)

	strat := strategy.Optimal(1, 1.0, 1.0)
	got := walk.Run(f, 3, cv, strat, 1, kernel, probeP, probeQ, probeQmP, nil)

	direct := isogeny.NewIsogeny3(f)
	wantCv, wantP, wantQ, wantR := direct.GenerateCurve(cv, kernel, probeP, probeQ, probeQmP)

	require.True(t, f.Equal(curve.JInvariant(f, got.Curve), curve.JInvariant(f, wantCv)))
	require.True(t, f.Equal(curve.Affine(f, got.PhiP), curve.Affine(f, wantP)))
	require.True(t, f.Equal(curve.Affine(f, got.PhiQ), curve.Affine(f, wantQ)))
	require.True(t, f.Equal(curve.Affine(f, got.PhiR), curve.Affine(f, wantR)))
	require.Nil(t, got.Aux)
}

// For height 2 with the balanced strategy.Optimal(2, ...) split (b=1, d=1),
// walk.Run's recursion reduces to: isogeny on [ell]kernel, then isogeny on
// kernel evaluated through the first step. This exercises the recursion's
// "carry" plumbing (the not-yet-reduced ancestor point riding through a
// nested subtree) against the same computation performed by hand.
func TestRunHeightTwoMatchesManualTwoStepComposition(t *testing.T) {
	f := testField(t)
	cv := curve.NewMontCoeffs(f, f.FromUint64(6), f.One())
	kernel := samplePoint(f, 7)
	probeP := samplePoint(f, 11)
	probeQ := samplePoint(f, 13)
	probeQmP := samplePoint(f, 17)

	strat := strategy.Optimal(2, 1.0, 1.0)
	require.Equal(t, 1, strat[2], "balanced equal-cost split for height 2 must be 1")

	got := walk.Run(f, 3, cv, strat, 2, kernel, probeP, probeQ, probeQmP, nil)

	rd1 := curve.XTPLe(f, cv, kernel, 1)
	phi1 := isogeny.NewIsogeny3(f)
	cv1, p1, q1, r1 := phi1.GenerateCurve(cv, rd1, probeP, probeQ, probeQmP)
	kernelEvaluated := phi1.EvaluatePoint(kernel)

	phi2 := isogeny.NewIsogeny3(f)
	cv2, p2, q2, r2 := phi2.GenerateCurve(cv1, kernelEvaluated, p1, q1, r1)

	require.True(t, f.Equal(curve.JInvariant(f, got.Curve), curve.JInvariant(f, cv2)))
	require.True(t, f.Equal(curve.Affine(f, got.PhiP), curve.Affine(f, p2)))
	require.True(t, f.Equal(curve.Affine(f, got.PhiQ), curve.Affine(f, q2)))
	require.True(t, f.Equal(curve.Affine(f, got.PhiR), curve.Affine(f, r2)))
}

func TestRunThreadsAuxPointWhenProvided(t *testing.T) {
	f := testField(t)
	cv := curve.NewMontCoeffs(f, f.FromUint64(6), f.One())
	kernel := samplePoint(f, 7)
	probeP := samplePoint(f, 11)
	probeQ := samplePoint(f, 13)
	probeQmP := samplePoint(f, 17)
	aux := samplePoint(f, 19)

	strat := strategy.Optimal(1, 1.0, 1.0)
	got := walk.Run(f, 3, cv, strat, 1, kernel, probeP, probeQ, probeQmP, &aux)

	require.NotNil(t, got.Aux)

	direct := isogeny.NewIsogeny3(f)
	_, _, _, _ = direct.GenerateCurve(cv, kernel, probeP, probeQ, probeQmP)
	wantAux := direct.EvaluatePoint(aux)
	require.True(t, f.Equal(curve.Affine(f, *got.Aux), curve.Affine(f, wantAux)))
}

func TestRunOmitsAuxWhenNotProvided(t *testing.T) {
	f := testField(t)
	cv := curve.NewMontCoeffs(f, f.FromUint64(6), f.One())
	kernel := samplePoint(f, 7)
	probeP := samplePoint(f, 11)
	probeQ := samplePoint(f, 13)
	probeQmP := samplePoint(f, 17)

	strat := strategy.Optimal(3, 1.0, 1.0)
	got := walk.Run(f, 3, cv, strat, 3, kernel, probeP, probeQ, probeQmP, nil)

	require.Nil(t, got.Aux)
}

// A taller, unbalanced-cost tree (height 6, evaluation much costlier than
// multiplication, pushing the splits away from balanced) must still
// complete, and its terminal curve must not be the curve it started on.
func TestRunCompletesForTallerUnbalancedTree(t *testing.T) {
	f := testField(t)
	cv := curve.NewMontCoeffs(f, f.FromUint64(6), f.One())
	kernel := samplePoint(f, 7)
	probeP := samplePoint(f, 11)
	probeQ := samplePoint(f, 13)
	probeQmP := samplePoint(f, 17)

	strat := strategy.Optimal(6, 1.0, 12.0)
	got := walk.Run(f, 3, cv, strat, 6, kernel, probeP, probeQ, probeQmP, nil)

	require.False(t, f.Equal(curve.JInvariant(f, got.Curve), curve.JInvariant(f, cv)))
}

// Degree 5 exercises the auxiliary-kernel-multiple bookkeeping inside
// isogeny.Isogeny5 end to end through the walk.
func TestRunWithDegreeFiveCompletes(t *testing.T) {
	f := testField(t)
	cv := curve.NewMontCoeffs(f, f.FromUint64(6), f.One())
	kernel := samplePoint(f, 7)
	probeP := samplePoint(f, 11)
	probeQ := samplePoint(f, 13)
	probeQmP := samplePoint(f, 17)

	strat := strategy.Optimal(4, 1.0, 1.0)
	got := walk.Run(f, 5, cv, strat, 4, kernel, probeP, probeQ, probeQmP, nil)

	require.False(t, f.Equal(curve.JInvariant(f, got.Curve), curve.JInvariant(f, cv)))
}

// Degree 4 exercises the xDBLe-doubled-multiplier convention (spec §4.5).
func TestRunWithDegreeFourCompletes(t *testing.T) {
	f := testField(t)
	cv := curve.NewMontCoeffs(f, f.FromUint64(6), f.One())
	kernel := samplePoint(f, 7)
	probeP := samplePoint(f, 11)
	probeQ := samplePoint(f, 13)
	probeQmP := samplePoint(f, 17)

	strat := strategy.Optimal(4, 1.0, 1.0)
	got := walk.Run(f, 4, cv, strat, 4, kernel, probeP, probeQ, probeQmP, nil)

	require.False(t, f.Equal(curve.JInvariant(f, got.Curve), curve.JInvariant(f, cv)))
}
