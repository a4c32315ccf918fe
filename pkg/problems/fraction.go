package problems

import "strconv"

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive numbers.
func LCM(a, b int) int {
	return a / GCD(a, b) * b
}

// Fraction is a rational number with a positive denominator.
type Fraction struct {
	Num int
	Den int
}

// Reduce divides both parts by their GCD and moves the sign to the numerator.
// A zero denominator is treated as 1.
func (f Fraction) Reduce() Fraction {
	if f.Den == 0 {
		f.Den = 1
	}
	if f.Den < 0 {
		f.Num, f.Den = -f.Num, -f.Den
	}
	if g := GCD(f.Num, f.Den); g > 1 {
		f.Num /= g
		f.Den /= g
	}
	if f.Num == 0 {
		f.Den = 1
	}
	return f
}

func (f Fraction) Add(g Fraction) Fraction {
	l := LCM(f.Den, g.Den)
	return Fraction{f.Num*(l/f.Den) + g.Num*(l/g.Den), l}.Reduce()
}

func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(Fraction{-g.Num, g.Den})
}

func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{f.Num * g.Num, f.Den * g.Den}.Reduce()
}

// Div panics on division by a zero fraction, like integer division.
func (f Fraction) Div(g Fraction) Fraction {
	if g.Num == 0 {
		panic("problems: division by zero fraction")
	}
	return Fraction{f.Num * g.Den, f.Den * g.Num}.Reduce()
}

// Less compares two fractions with positive denominators.
func (f Fraction) Less(g Fraction) bool {
	return f.Num*g.Den < g.Num*f.Den
}

// Equal compares reduced forms.
func (f Fraction) Equal(g Fraction) bool {
	return f.Reduce() == g.Reduce()
}

func (f Fraction) String() string {
	return strconv.Itoa(f.Num) + "/" + strconv.Itoa(f.Den)
}

func (f Fraction) spoken() string {
	return strconv.Itoa(f.Num) + " дробь " + strconv.Itoa(f.Den)
}
