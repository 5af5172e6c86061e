// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package goldilocks

// Extension is an element of the quadratic extension F_p[w]/(w^2 - 7): A +
// B*w, with 7 a quadratic non-residue in F_p. Only this package's tests use
// it: fri folds over the base field, and no code reads the FieldExtension
// flag of proofoptions.Options (§4.F `field_extension`).
//
// Grounded on zk/stark.go's ExtensionField{A,B uint64}, rewritten over
// Element instead of raw uint64 so every operation reduces through the same
// Mul/Add/Sub as the base field.
type Extension struct {
	A, B Element
}

// NonResidue is the quadratic non-residue defining the extension.
const NonResidue Element = 7

// ExtZero and ExtOne are the extension-field identities.
var (
	ExtZero = Extension{}
	ExtOne  = Extension{A: One}
)

// ExtFromBase embeds a base-field element into the extension.
func ExtFromBase(a Element) Extension { return Extension{A: a} }

// Add returns x+y in the extension.
func (x Extension) Add(y Extension) Extension {
	return Extension{A: x.A.Add(y.A), B: x.B.Add(y.B)}
}

// Sub returns x-y in the extension.
func (x Extension) Sub(y Extension) Extension {
	return Extension{A: x.A.Sub(y.A), B: x.B.Sub(y.B)}
}

// Mul returns x*y = (a0+b0 w)(a1+b1 w) = (a0 a1 + 7 b0 b1) + (a0 b1 + a1 b0) w.
func (x Extension) Mul(y Extension) Extension {
	a := x.A.Mul(y.A).Add(NonResidue.Mul(x.B.Mul(y.B)))
	b := x.A.Mul(y.B).Add(x.B.Mul(y.A))
	return Extension{A: a, B: b}
}

// MulBase scales x by a base-field scalar.
func (x Extension) MulBase(s Element) Extension {
	return Extension{A: x.A.Mul(s), B: x.B.Mul(s)}
}

// Square returns x^2.
func (x Extension) Square() Extension { return x.Mul(x) }

// Conjugate returns a0 - b0 w, the Frobenius conjugate.
func (x Extension) Conjugate() Extension { return Extension{A: x.A, B: x.B.Neg()} }

// Norm returns x * conjugate(x), an element of the base field: a0^2 - 7 b0^2.
func (x Extension) Norm() Element {
	return x.A.Square().Sub(NonResidue.Mul(x.B.Square()))
}

// Inv returns the multiplicative inverse of x via x^-1 = conjugate(x) / Norm(x).
func (x Extension) Inv() Extension {
	n := x.Norm()
	if n.IsZero() {
		panic("goldilocks: inverse of zero extension element")
	}
	ninv := n.Inv()
	conj := x.Conjugate()
	return Extension{A: conj.A.Mul(ninv), B: conj.B.Mul(ninv)}
}

// IsZero reports whether x is the additive identity.
func (x Extension) IsZero() bool { return x.A.IsZero() && x.B.IsZero() }

// Equal reports value equality.
func (x Extension) Equal(y Extension) bool { return x.A.Equal(y.A) && x.B.Equal(y.B) }
