package textfilter

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tokenPattern matches signed integers and hyphenated words.
var tokenPattern = regexp.MustCompile(`-?\d+|\p{L}+(?:-\p{L}+)*`)

var lower = cases.Lower(language.Russian)

// numberWords maps spoken Russian numerals to their values.
var numberWords = map[string]int{
	"ноль": 0, "нуль": 0,
	"один": 1, "одна": 1, "одну": 1, "первый": 1, "первая": 1,
	"два": 2, "две": 2, "второй": 2, "вторая": 2,
	"три": 3, "третий": 3, "третья": 3,
	"четыре": 4, "четвертый": 4, "четвертая": 4,
	"пять": 5, "пятый": 5, "пятая": 5,
	"шесть": 6, "шестой": 6, "шестая": 6,
	"семь": 7, "восемь": 8, "девять": 9, "десять": 10,
	"одиннадцать": 11, "двенадцать": 12, "тринадцать": 13, "четырнадцать": 14,
	"пятнадцать": 15, "шестнадцать": 16, "семнадцать": 17, "восемнадцать": 18,
	"девятнадцать": 19, "двадцать": 20, "тридцать": 30, "сорок": 40,
	"пятьдесят": 50, "шестьдесят": 60, "семьдесят": 70, "восемьдесят": 80,
	"девяносто": 90, "сто": 100,
}

// Normalize lowercases an utterance and folds ё into е, the way the platform
// recognizer reports tokens.
func Normalize(text string) string {
	text = lower.String(text)
	return strings.ReplaceAll(text, "ё", "е")
}

// Tokens splits an utterance into normalized words and numbers. Punctuation is
// dropped, so "3/4" yields two tokens.
func Tokens(text string) []string {
	return tokenPattern.FindAllString(Normalize(text), -1)
}

// Number reads a token written either in digits or as a simple numeral word.
// A leading "минус" is handled by the caller.
func Number(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	n, ok := numberWords[Normalize(token)]
	return n, ok
}

// IsNegation reports whether the token flips the sign of the number after it.
func IsNegation(token string) bool {
	return Normalize(token) == "минус"
}
