// Package rs implements the block Reed-Solomon error correction codec used
// by QR Code symbols: construction of the generator polynomial for a given
// number of ECC codewords, and computation of the remainder that becomes
// the ECC codewords appended to a data block.
package rs

import (
	"errors"

	"github.com/qrforge/qrcode/gf256"
)

// ErrInvalidDegree is returned when a generator polynomial is requested for
// a degree outside [1, 255].
var ErrInvalidDegree = errors.New("rs: degree out of range [1, 255]")

// Divisor is a Reed-Solomon generator polynomial, stored as coefficients from
// highest to lowest power, excluding the implicit leading x^degree term.
type Divisor []byte

// ComputeDivisor returns the generator polynomial G(x) = prod_{i=0}^{degree-1}
// (x - alpha^i) for the given degree, as a Divisor of length degree.
//
// The generator depends only on degree, never on data, so callers that
// repeatedly encode blocks of the same ECC length may cache the result.
func ComputeDivisor(degree int) (Divisor, error) {
	if degree < 1 || degree > 255 {
		return nil, ErrInvalidDegree
	}

	// Coefficients from highest to lowest power, excluding the leading 1.
	result := make([]byte, degree-1, degree)
	result = append(result, 1) // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the running product by (x - alpha^i); since alpha^i is
		// its own negation in GF(2), this is (x + alpha^i).
		for j := 0; j < len(result); j++ {
			result[j] = gf256.Mul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gf256.Mul(root, 2)
	}
	return Divisor(result), nil
}

// ComputeRemainder returns the Reed-Solomon ECC codewords for data, i.e. the
// remainder of data(x)*x^deg(divisor) divided by divisor, computed by
// synthetic division. The result has the same length as divisor.
func ComputeRemainder(data []byte, divisor Divisor) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i, coef := range divisor {
			result[i] ^= gf256.Mul(coef, factor)
		}
	}
	return result
}

// Encode returns data followed by its Reed-Solomon ECC codewords, computed
// against the generator polynomial for len(divisor) ECC codewords.
func Encode(data []byte, divisor Divisor) []byte {
	ecc := ComputeRemainder(data, divisor)
	out := make([]byte, 0, len(data)+len(ecc))
	out = append(out, data...)
	out = append(out, ecc...)
	return out
}
