package photon

import (
	"fmt"
	"math"
)

// ExpNumber is a value in scientific notation, Mantissa × 10^Exponent,
// with 1 <= |Mantissa| < 10 unless the value is zero.
type ExpNumber struct {
	Mantissa float64
	Exponent int
}

// NewExpNumber normalises v. Non-finite values become zero.
func NewExpNumber(v float64) ExpNumber {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ExpNumber{}
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	m := v / math.Pow10(exp)
	// log10 rounding can leave the mantissa just outside [1,10)
	if math.Abs(m) >= 10 {
		m /= 10
		exp++
	} else if math.Abs(m) < 1 {
		m *= 10
		exp--
	}
	return ExpNumber{Mantissa: m, Exponent: exp}
}

func (n ExpNumber) Float64() float64 {
	return n.Mantissa * math.Pow10(n.Exponent)
}

func (n ExpNumber) IsZero() bool {
	return n.Mantissa == 0
}

func (n ExpNumber) String() string {
	return n.Format("")
}

// Format renders the number with two decimals and an optional unit,
// e.g. "2.50e-07 A".
func (n ExpNumber) Format(unit string) string {
	if n.IsZero() {
		if unit == "" {
			return "0"
		}
		return "0 " + unit
	}
	m, exp := math.Round(n.Mantissa*100)/100, n.Exponent
	if math.Abs(m) >= 10 {
		m /= 10
		exp++
	}
	s := fmt.Sprintf("%.2fe%+03d", m, exp)
	if unit == "" {
		return s
	}
	return s + " " + unit
}
