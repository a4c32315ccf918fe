package phrases

import (
	"strconv"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Noun returns the form of a Russian noun agreeing with n: one for 1, 21, 31...,
// few for 2-4, 22-24..., many otherwise.
func Noun(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	switch plural.Cardinal.MatchPlural(language.Russian, n, 0, 0, 0, 0) {
	case plural.One:
		return one
	case plural.Few:
		return few
	default:
		return many
	}
}

// Questions renders "N вопрос(а/ов)".
func Questions(n int) string {
	return strconv.Itoa(n) + " " + Noun(n, "вопрос", "вопроса", "вопросов")
}
