package sidh_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suhrikim/HuffSIDH/params"
	"github.com/suhrikim/HuffSIDH/sidh"
)

// repeatReader feeds an endless stream of the same byte, giving deterministic
// (if not remotely random) scalars for tests that need reproducibility
// without touching crypto/rand.
type repeatReader struct{ b byte }

func (r repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}

// Both parties deriving a shared secret from each other's public key must
// agree, for both curve models (spec §4.6's core correctness property; this
// module's own internal-consistency stand-in for the teacher's fixed KAT
// vectors — see DESIGN.md's Open Question 7).
func TestMontgomeryBothPartiesAgree(t *testing.T) {
	p := params.P751()

	alicePrv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)
	require.NoError(t, alicePrv.Generate(repeatReader{0x5A}))
	bobPrv := sidh.NewPrivateKey(p, sidh.Bob, sidh.Montgomery)
	require.NoError(t, bobPrv.Generate(repeatReader{0xA5}))

	alicePub := sidh.KeygenAliceMontgomery(alicePrv)
	bobPub := sidh.KeygenBobMontgomery(bobPrv)

	secretA, err := sidh.AgreeAliceMontgomery(alicePrv, bobPub)
	require.NoError(t, err)
	secretB, err := sidh.AgreeBobMontgomery(bobPrv, alicePub)
	require.NoError(t, err)

	require.True(t, bytes.Equal(secretA, secretB))
}

func TestHuffBothPartiesAgree(t *testing.T) {
	p := params.P610()

	alicePrv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Huff)
	require.NoError(t, alicePrv.Generate(repeatReader{0x11}))
	bobPrv := sidh.NewPrivateKey(p, sidh.Bob, sidh.Huff)
	require.NoError(t, bobPrv.Generate(repeatReader{0x22}))

	alicePub := sidh.KeygenAliceHuff(alicePrv)
	bobPub := sidh.KeygenBobHuff(bobPrv)

	secretA, err := sidh.AgreeAliceHuff(alicePrv, bobPub)
	require.NoError(t, err)
	secretB, err := sidh.AgreeBobHuff(bobPrv, alicePub)
	require.NoError(t, err)

	require.True(t, bytes.Equal(secretA, secretB))
}

// A zero scalar is still a valid (if degenerate) point in the key space:
// the walk must complete rather than panic, and both parties must still
// agree.
func TestZeroScalarStillAgrees(t *testing.T) {
	p := params.P751()

	alicePrv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)
	alicePrv.Scalar = make([]byte, alicePrv.Size()) // all-zero
	bobPrv := sidh.NewPrivateKey(p, sidh.Bob, sidh.Montgomery)
	require.NoError(t, bobPrv.Generate(repeatReader{0x7E}))

	alicePub := sidh.KeygenAliceMontgomery(alicePrv)
	bobPub := sidh.KeygenBobMontgomery(bobPrv)

	secretA, err := sidh.AgreeAliceMontgomery(alicePrv, bobPub)
	require.NoError(t, err)
	secretB, err := sidh.AgreeBobMontgomery(bobPrv, alicePub)
	require.NoError(t, err)

	require.True(t, bytes.Equal(secretA, secretB))
}

// DeriveSecret-equivalent calls must reject a private/public pair drawn
// from the same party (spec §7).
func TestAgreeRejectsSameParty(t *testing.T) {
	p := params.P751()

	alicePrv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)
	require.NoError(t, alicePrv.Generate(repeatReader{0x5A}))
	otherAlicePrv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)
	require.NoError(t, otherAlicePrv.Generate(repeatReader{0x5B}))

	alicePub := sidh.KeygenAliceMontgomery(otherAlicePrv)

	_, err := sidh.AgreeAliceMontgomery(alicePrv, alicePub)
	require.ErrorIs(t, err, sidh.ErrIncompatibleKeys)
}

// A tampered public key (spec §3 Invariant (i): the engine never validates
// that a point satisfies the curve equation or has the expected order)
// must still walk to completion rather than erroring out, even though the
// resulting "shared secret" no longer matches the other party's.
func TestAgreeStillCompletesOnTamperedPublicKey(t *testing.T) {
	p := params.P751()

	alicePrv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)
	require.NoError(t, alicePrv.Generate(repeatReader{0x5A}))
	bobPrv := sidh.NewPrivateKey(p, sidh.Bob, sidh.Montgomery)
	require.NoError(t, bobPrv.Generate(repeatReader{0xA5}))

	bobPub := sidh.KeygenBobMontgomery(bobPrv)
	tampered := bobPub.Export()
	tampered[0] ^= 0xFF
	tamperedPub := sidh.NewPublicKey(p, sidh.Bob, sidh.Montgomery)
	require.NoError(t, tamperedPub.Import(tampered))

	secretA, err := sidh.AgreeAliceMontgomery(alicePrv, tamperedPub)
	require.NoError(t, err)

	alicePub := sidh.KeygenAliceMontgomery(alicePrv)
	secretB, err := sidh.AgreeBobMontgomery(bobPrv, alicePub)
	require.NoError(t, err)

	require.False(t, bytes.Equal(secretA, secretB))
}

// Import/Export round-trip for both key types (spec §6).
func TestPublicKeyExportImportRoundTrips(t *testing.T) {
	p := params.P751()
	prv := sidh.NewPrivateKey(p, sidh.Bob, sidh.Montgomery)
	require.NoError(t, prv.Generate(repeatReader{0x42}))
	pub := sidh.KeygenBobMontgomery(prv)

	encoded := pub.Export()
	require.Equal(t, pub.Size(), len(encoded))

	roundTrip := sidh.NewPublicKey(p, sidh.Bob, sidh.Montgomery)
	require.NoError(t, roundTrip.Import(encoded))
	require.Equal(t, encoded, roundTrip.Export())
}

func TestPrivateKeyExportImportRoundTrips(t *testing.T) {
	p := params.P751()
	prv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)
	require.NoError(t, prv.Generate(repeatReader{0x99}))

	encoded := prv.Export()
	roundTrip := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)
	require.NoError(t, roundTrip.Import(encoded))
	require.Equal(t, encoded, roundTrip.Export())
}

func TestImportRejectsWrongSize(t *testing.T) {
	p := params.P751()
	pub := sidh.NewPublicKey(p, sidh.Alice, sidh.Montgomery)
	require.ErrorIs(t, pub.Import(make([]byte, pub.Size()-1)), sidh.ErrBufferShape)

	prv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)
	require.ErrorIs(t, prv.Import(make([]byte, prv.Size()+1)), sidh.ErrBufferShape)
}

// Generate zeroizes the scalar buffer on an entropy-source failure rather
// than leaving partially-filled secret bytes behind (spec §7).
func TestGenerateZeroizesOnEntropyFailure(t *testing.T) {
	p := params.P751()
	prv := sidh.NewPrivateKey(p, sidh.Alice, sidh.Montgomery)

	err := prv.Generate(io.LimitReader(repeatReader{0xFF}, 3))
	require.ErrorIs(t, err, sidh.ErrEntropyExhausted)
	for _, b := range prv.Scalar {
		require.Zero(t, b)
	}
}
