// Package problems generates the questions asked by the quiz topics.
package problems

import (
	"fmt"

	"github.com/jwebster45206/mathbrain/pkg/phrases"
)

// Problem is one generated question.
type Problem struct {
	Text   string // shown on screen, e.g. "12 + 5 = ?"
	Speech string // spoken right after the question is posed
	Again  string // second phrasing, spoken after the timer sound

	Answer Fraction // Den is 1 for integer answers
	Angles []int    // accepted answers of a trigonometry question
	Row    int      // trigonometry table row, -1 otherwise
}

// Generator produces the next question of a topic. asked reports the table rows
// already used in the run; only the trigonometry generator looks at it.
type Generator func(p *phrases.Picker, asked func(row int) bool) Problem

func integer(n int) Fraction {
	return Fraction{Num: n, Den: 1}
}

func spoken(p *phrases.Picker, variants []string) (string, string) {
	return p.One(variants...), p.One(variants...)
}

// AdditionSubtraction adds or subtracts two numbers in [-1000, 1000].
func AdditionSubtraction(p *phrases.Picker, _ func(int) bool) Problem {
	a, b := p.Between(-1000, 1000), p.Between(-1000, 1000)

	var pr Problem
	var variants []string
	if p.Coin() {
		pr.Text = fmt.Sprintf("%d + %d = ?", a, b)
		pr.Answer = integer(a + b)
		variants = []string{
			fmt.Sprintf("сколько будет %d плюс %d", a, b),
			fmt.Sprintf("реши %d плюс %d", a, b),
			fmt.Sprintf("сумма %d и %d равна", a, b),
			fmt.Sprintf("%d плюс %d б+уудет", a, b),
			fmt.Sprintf("%d плюс %d равн+оо", a, b),
		}
	} else {
		pr.Text = fmt.Sprintf("%d - %d = ?", a, b)
		pr.Answer = integer(a - b)
		variants = []string{
			fmt.Sprintf("сколько будет %d минус %d", a, b),
			fmt.Sprintf("реши %d минус %d", a, b),
			fmt.Sprintf("разница %d и %d равна", a, b),
			fmt.Sprintf("%d минус %d б+уудет", a, b),
			fmt.Sprintf("%d минус %d равн+оо", a, b),
		}
	}
	pr.Speech, pr.Again = spoken(p, variants)
	pr.Row = -1
	return pr
}

// MultiplicationDivision multiplies two numbers in [-50, 50], or divides their
// product by one of them so the quotient is whole.
func MultiplicationDivision(p *phrases.Picker, _ func(int) bool) Problem {
	a := p.Between(-50, 50)
	b := p.Between(-50, 49)
	if b >= 0 {
		b++ // skips zero, keeps [-50, 50]
	}

	var pr Problem
	var variants []string
	if p.Coin() {
		pr.Text = fmt.Sprintf("%d * %d = ?", a, b)
		pr.Answer = integer(a * b)
		variants = []string{
			fmt.Sprintf("сколько будет %d умножить на %d", a, b),
			fmt.Sprintf("реши %d умножить на %d", a, b),
			fmt.Sprintf("произведение %d и %d равно", a, b),
			fmt.Sprintf("%d умножить на %d б+уудет", a, b),
			fmt.Sprintf("%d умноженное на %d равн+оо", a, b),
		}
	} else {
		product := a * b
		pr.Text = fmt.Sprintf("%d / %d = ?", product, b)
		pr.Answer = integer(a)
		variants = []string{
			fmt.Sprintf("сколько будет %d делить на %d", product, b),
			fmt.Sprintf("реши %d делить на %d", product, b),
			fmt.Sprintf("частное %d и %d равно", product, b),
			fmt.Sprintf("%d делить на %d б+уудет", product, b),
			fmt.Sprintf("%d деленное на %d равн+оо", product, b),
		}
	}
	pr.Speech, pr.Again = spoken(p, variants)
	pr.Row = -1
	return pr
}

func randomFraction(p *phrases.Picker) Fraction {
	return Fraction{p.Between(1, 20), p.Between(1, 20)}.Reduce()
}

// Fractions applies one of the four operations to two reduced fractions with parts
// in [1, 20]. Sums and differences use related denominators; differences are never
// negative. The answer is reduced.
func Fractions(p *phrases.Picker, _ func(int) bool) Problem {
	x := randomFraction(p)
	var y Fraction

	var pr Problem
	var sign, verb, noun, adj string
	switch p.Between(1, 4) {
	case 1:
		y = Fraction{p.Between(1, 20), x.Den * p.Between(2, 3)}.Reduce()
		pr.Answer = x.Add(y)
		sign, verb, noun, adj = "+", "плюс", "сумма", "равна"
	case 2:
		y = Fraction{p.Between(1, 20), x.Den * p.Between(2, 3)}.Reduce()
		if x.Less(y) {
			x, y = y, x
		}
		pr.Answer = x.Sub(y)
		sign, verb, noun, adj = "-", "минус", "разница", "равна"
	case 3:
		y = randomFraction(p)
		pr.Answer = x.Mul(y)
		sign, verb, noun, adj = "*", "умножить на", "произведение", "равно"
	default:
		y = randomFraction(p)
		pr.Answer = x.Div(y)
		sign, verb, noun, adj = "/", "разделить на", "частное", "равно"
	}

	pr.Text = fmt.Sprintf("%s %s %s = ?", x, sign, y)
	xs, ys := x.spoken(), y.spoken()
	pr.Speech, pr.Again = spoken(p, []string{
		fmt.Sprintf("сколько будет %s %s %s", xs, verb, ys),
		fmt.Sprintf("реши %s %s %s", xs, verb, ys),
		fmt.Sprintf("%s двух дробей %s и %s %s", noun, xs, ys, adj),
		fmt.Sprintf("%s %s %s б+уудет", xs, verb, ys),
		fmt.Sprintf("%s %s %s равн+оо", xs, verb, ys),
	})
	pr.Row = -1
	return pr
}

// Exponentiation raises a base in [1, 30] to a power; smaller bases get larger powers.
func Exponentiation(p *phrases.Picker, _ func(int) bool) Problem {
	base := p.Between(1, 30)
	var exp int
	switch {
	case base < 4:
		exp = p.Between(2, 5)
	case base < 11:
		exp = p.Between(2, 4)
	case base < 21:
		exp = p.Between(2, 3)
	default:
		exp = 2
	}

	answer := 1
	for range exp {
		answer *= base
	}

	pr := Problem{
		Text:   fmt.Sprintf("%d^%d = ?", base, exp),
		Answer: integer(answer),
		Row:    -1,
	}
	pr.Speech, pr.Again = spoken(p, []string{
		fmt.Sprintf("сколько будет %d в степени %d", base, exp),
		fmt.Sprintf("реши %d в степени %d", base, exp),
		fmt.Sprintf("%d в степени %d б+уудет", base, exp),
		fmt.Sprintf("%d в степени %d равн+оо", base, exp),
	})
	return pr
}

// SquareRoot asks for the root of a perfect square k² with k in [1, 50].
func SquareRoot(p *phrases.Picker, _ func(int) bool) Problem {
	k := p.Between(1, 50)
	sq := k * k
	pr := Problem{
		Text:   fmt.Sprintf("√%d = ?", sq),
		Answer: integer(k),
		Row:    -1,
	}
	pr.Speech, pr.Again = spoken(p, []string{
		fmt.Sprintf("чему равен квадратный корень из %d", sq),
		fmt.Sprintf("посчитай квадратный корень из %d", sq),
		fmt.Sprintf("квадратный корень из %d равен", sq),
		fmt.Sprintf("квадратный корень из %d б+уудет", sq),
	})
	return pr
}

// Trigonometry picks a table row not used yet in the run. Once every row was
// used the history is ignored.
func Trigonometry(p *phrases.Picker, asked func(int) bool) Problem {
	if asked == nil {
		asked = func(int) bool { return false }
	}
	row := p.Intn(len(trigTable))
	for tries := 0; asked(row) && tries < len(trigTable); tries++ {
		row = (row + 1) % len(trigTable)
	}

	e := trigTable[row]
	return Problem{
		Text:   e.text,
		Speech: e.spoken,
		Again:  p.AnswerPrompt(),
		Answer: integer(e.angles[0]),
		Angles: append([]int(nil), e.angles...),
		Row:    row,
	}
}
