// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fri

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hegemon/zkstack/challenger"
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/proofoptions"
)

// lowDegreeEvaluations builds the evaluation vector of a genuinely
// low-degree polynomial (degree < domainSize/4) over the full domain, so
// a correct FRI proof over it must verify.
func lowDegreeEvaluations(domainSize int, coeffs []goldilocks.Element) []goldilocks.Element {
	root := goldilocks.RootOfUnity(uint64(domainSize))
	out := make([]goldilocks.Element, domainSize)
	x := goldilocks.One
	for i := 0; i < domainSize; i++ {
		acc := goldilocks.Zero
		xp := goldilocks.One
		for _, c := range coeffs {
			acc = acc.Add(c.Mul(xp))
			xp = xp.Mul(x)
		}
		out[i] = acc
		x = x.Mul(root)
	}
	return out
}

func TestCommitVerifyRoundTrip(t *testing.T) {
	domainSize := 64
	coeffs := []goldilocks.Element{goldilocks.New(3), goldilocks.New(5), goldilocks.New(11)}
	evals := lowDegreeEvaluations(domainSize, coeffs)

	params := Params{NumQueries: 12, FinalLayerCap: 4}

	proveCh := challenger.New(proofoptions.ChallengerHash, []byte("fri-test"))
	proof, _, _, err := Commit(proveCh, evals, params)
	require.NoError(t, err)

	verifyCh := challenger.New(proofoptions.ChallengerHash, []byte("fri-test"))
	require.NoError(t, Verify(verifyCh, proof, domainSize, params), "Verify rejected a valid proof")
}

func TestVerifyRejectsTamperedFinalValue(t *testing.T) {
	domainSize := 64
	coeffs := []goldilocks.Element{goldilocks.New(1), goldilocks.New(2)}
	evals := lowDegreeEvaluations(domainSize, coeffs)
	params := Params{NumQueries: 8, FinalLayerCap: 4}

	proveCh := challenger.New(proofoptions.ChallengerHash, []byte("tamper"))
	proof, _, _, err := Commit(proveCh, evals, params)
	require.NoError(t, err)
	proof.FinalValues[0] = proof.FinalValues[0].Add(goldilocks.One)

	verifyCh := challenger.New(proofoptions.ChallengerHash, []byte("tamper"))
	require.Error(t, Verify(verifyCh, proof, domainSize, params), "Verify accepted a proof with a tampered final layer")
}

func TestVerifyRejectsTamperedQueryValue(t *testing.T) {
	domainSize := 64
	coeffs := []goldilocks.Element{goldilocks.New(7)}
	evals := lowDegreeEvaluations(domainSize, coeffs)
	params := Params{NumQueries: 8, FinalLayerCap: 4}

	proveCh := challenger.New(proofoptions.ChallengerHash, []byte("q-tamper"))
	proof, _, _, err := Commit(proveCh, evals, params)
	require.NoError(t, err)
	proof.Queries[0].Layers[0].ValueA = proof.Queries[0].Layers[0].ValueA.Add(goldilocks.One)

	verifyCh := challenger.New(proofoptions.ChallengerHash, []byte("q-tamper"))
	require.Error(t, Verify(verifyCh, proof, domainSize, params), "Verify accepted a proof with a tampered query opening")
}

func TestCommitRejectsNonPowerOfTwo(t *testing.T) {
	ch := challenger.New(proofoptions.ChallengerHash, nil)
	_, _, _, err := Commit(ch, make([]goldilocks.Element, 10), Params{NumQueries: 4, FinalLayerCap: 2})
	require.ErrorIs(t, err, ErrDegreeNotPowerOfTwo)
}
