package gf_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suhrikim/HuffSIDH/gf"
)

// smallPrime is a tiny 3-mod-4 prime used so the tests run over a compact
// Field without pulling in the full 610/751-bit parameter tables. It leaves
// the headroom the [0,2p) representation needs (4p < 2^64).
var smallPrime = []uint64{0x1FFFFFFFFFFFFFFF} // 2^61 - 1, prime, ≡3 mod 4

func testField(t *testing.T) *gf.Field {
	t.Helper()
	return gf.NewField(smallPrime)
}

func TestMontgomeryOneIsIdentity(t *testing.T) {
	f := testField(t)
	x := f.FromUint64(123456789)
	z := f.New()
	f.Mul(z, x, f.One)
	require.True(t, f.Equal(z, x))
}

func TestAddCommutesAndAssociates(t *testing.T) {
	f := testField(t)
	a := f.FromUint64(7)
	b := f.FromUint64(11)
	c := f.FromUint64(13)

	ab := f.New()
	ba := f.New()
	f.Add(ab, a, b)
	f.Add(ba, b, a)
	require.True(t, f.Equal(ab, ba))

	abc1 := f.New()
	f.Add(abc1, ab, c)
	bc := f.New()
	f.Add(bc, b, c)
	abc2 := f.New()
	f.Add(abc2, a, bc)
	require.True(t, f.Equal(abc1, abc2))
}

func TestMulCommutes(t *testing.T) {
	f := testField(t)
	a := f.FromUint64(9999)
	b := f.FromUint64(31337)
	ab := f.New()
	ba := f.New()
	f.Mul(ab, a, b)
	f.Mul(ba, b, a)
	require.True(t, f.Equal(ab, ba))
}

func TestInverseRoundTrips(t *testing.T) {
	f := testField(t)
	x := f.FromUint64(424242)
	inv := f.New()
	f.Inv(inv, x)
	back := f.New()
	f.Inv(back, inv)
	require.True(t, f.Equal(back, x))

	one := f.New()
	f.Mul(one, x, inv)
	require.True(t, f.Equal(one, f.One))
}

func TestSqrtProducesARoot(t *testing.T) {
	f := testField(t)
	x := f.FromUint64(16)
	sq := f.New()
	f.Sqr(sq, x)
	root := f.New()
	f.Sqrt(root, sq)
	rootSq := f.New()
	f.Sqr(rootSq, root)
	require.True(t, f.Equal(rootSq, sq))
}

// Sqrt must always return the root whose plain, non-Montgomery
// representative is even (spec §4.1's canonical-root convention), for both
// an input whose naive x^((p+1)/4) root happens to be even already and one
// where that root is odd and must be negated.
func TestSqrtReturnsTheEvenRoot(t *testing.T) {
	f := testField(t)
	for _, seed := range []uint64{16, 9, 25, 12345} {
		x := f.FromUint64(seed)
		sq := f.New()
		f.Sqr(sq, x)
		root := f.New()
		f.Sqrt(root, sq)

		buf := make([]byte, 8)
		f.Encode(buf, root)
		require.Zero(t, buf[0]&1, "Sqrt(%d) returned an odd canonical root", seed)
	}
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	f := testField(t)
	x := f.FromUint64(987654321)
	buf := make([]byte, 8)
	f.Encode(buf, x)
	back := f.Decode(buf)
	require.True(t, f.Equal(back, x))
}

func TestSubUnderflowWraps(t *testing.T) {
	f := testField(t)
	a := f.FromUint64(3)
	b := f.FromUint64(5)
	z := f.New()
	f.Sub(z, a, b)
	f.Correct(z)
	// a - b mod p == p - 2
	pMinus2 := new(big.Int).Sub(new(big.Int).SetUint64(smallPrime[0]), big.NewInt(2))
	be := pMinus2.FillBytes(make([]byte, 8))
	want := f.Decode(reverseBytes(be))
	require.True(t, f.Equal(z, want))
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
