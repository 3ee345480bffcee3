// Package gf256 implements arithmetic over GF(2^8) with the primitive
// polynomial 0x11D (x^8 + x^4 + x^3 + x^2 + 1), the field used by the
// QR Code Reed-Solomon error correction coding.
package gf256

// reducer is the primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D)
// with its implicit leading x^8 term stripped, i.e. 0x1D: whenever a
// shifted product would carry into bit 8, XOR-ing this back in performs
// the modular reduction.
const reducer = 0x1D

// generator is alpha, a generator element of the field's multiplicative group.
const generator = 2

// exp and log hold the antilog/log tables used by Mul and Div. exp holds the
// 255 powers of the generator twice over so that exp[log[a]+log[b]] never
// needs a modulo.
var exp [510]byte
var log [256]byte

func init() {
	x := byte(1)
	for i := 0; i < 255; i++ {
		exp[i] = x
		log[x] = byte(i)
		x = peasantMultiply(x, generator)
	}
	for i := 255; i < 510; i++ {
		exp[i] = exp[i-255]
	}
}

// Add returns a+b in GF(256). Addition and subtraction are both XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a-b in GF(256), identical to Add.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns the product of a and b in GF(256) via the log/antilog tables.
// Mul(a, 0) = Mul(0, b) = 0 and Mul(a, 1) = a for all a, b.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return exp[int(log[a])+int(log[b])]
}

// Div returns a/b in GF(256). Panics if b is zero. Division is not used by
// the encoding pipeline but is provided for testing the field itself.
func Div(a, b byte) byte {
	if b == 0 {
		panic("division by zero in GF(256)")
	}
	if a == 0 {
		return 0
	}
	diff := int(log[a]) - int(log[b])
	if diff < 0 {
		diff += 255
	}
	return exp[diff]
}

// Inverse returns the multiplicative inverse of a. Panics if a is zero.
func Inverse(a byte) byte {
	if a == 0 {
		panic("zero has no multiplicative inverse in GF(256)")
	}
	return exp[255-int(log[a])]
}

// Exp returns generator^power, for power in [0, 254]; exponents outside that
// range are reduced modulo 255, the order of the multiplicative group.
func Exp(power int) byte {
	power %= 255
	if power < 0 {
		power += 255
	}
	return exp[power]
}

// peasantMultiply computes a*b via the Russian-peasant method, reducing by
// the primitive polynomial whenever the running product exceeds 8 bits. Used
// only to bootstrap the log/antilog tables at package init.
func peasantMultiply(a, b byte) byte {
	var z byte
	x, y := a, b
	for i := 0; i < 8; i++ {
		if y&1 != 0 {
			z ^= x
		}
		hadHighBit := x&0x80 != 0
		x <<= 1
		if hadHighBit {
			x ^= reducer
		}
		y >>= 1
	}
	return z
}
