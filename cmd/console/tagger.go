package main

import (
	"encoding/json"
	"slices"
	"strconv"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/scenario"
	"github.com/jwebster45206/mathbrain/pkg/textfilter"
)

// keyword tags an intent when any of its words appears in the utterance.
type keyword struct {
	intent string
	words  []string
}

// keywords stand in for the skill's NLU model when playing from a terminal.
var keywords = []keyword{
	{scenario.IntentStartReject, []string{"хватит", "выход", "выйти", "стоп", "закончить", "закончим"}},
	{scenario.IntentSayAgain, []string{"повтори", "повтори-ка", "еще"}},
	{scenario.IntentToStart, []string{"начало", "сначала"}},
	{scenario.IntentCapabilities, []string{"умеешь", "умеет", "умеете"}},
	{scenario.IntentPlatformHelp, []string{"помощь", "помоги", "подсказка"}},
	{scenario.IntentBack, []string{"назад", "вернись"}},
	{scenario.IntentFacts, []string{"факты", "факт", "интересное"}},
	{scenario.IntentConfirm, []string{"да", "давай", "начнем", "начать", "конечно", "хорошо", "ок", "сыграть", "заново"}},
	{scenario.IntentReject, []string{"нет", "неа"}},
	{string(scenario.AdditionSubtraction), []string{"сложение", "вычитание", "сложения", "вычитания"}},
	{string(scenario.MultiplicationDivision), []string{"умножение", "деление", "умножения", "деления"}},
	{string(scenario.Fractions), []string{"дроби", "дробей"}},
	{string(scenario.Exponentiation), []string{"степень", "степени", "возведение"}},
	{string(scenario.SquareRoot), []string{"корень", "корни", "корней"}},
	{string(scenario.Trigonometry), []string{"тригонометрия", "тригонометрию", "синус", "косинус"}},
}

// tag turns typed text into what the platform recognizer would have sent.
func tag(text string) dialog.NLU {
	tokens := textfilter.Tokens(text)
	nlu := dialog.NLU{
		Tokens:   tokens,
		Entities: []dialog.Entity{},
		Intents:  map[string]dialog.Intent{},
	}
	if tokens == nil {
		nlu.Tokens = []string{}
	}

	for _, kw := range keywords {
		if slices.ContainsFunc(kw.words, func(w string) bool { return slices.Contains(tokens, w) }) {
			nlu.Intents[kw.intent] = dialog.Intent{}
		}
	}

	firstNumber := -1
	for i := 0; i < len(tokens); i++ {
		n, ok := textfilter.Number(tokens[i])
		start := i
		if !ok && textfilter.IsNegation(tokens[i]) && i+1 < len(tokens) {
			if m, ok2 := textfilter.Number(tokens[i+1]); ok2 {
				n, ok = -m, true
				i++
			}
		}
		if !ok {
			continue
		}
		if firstNumber < 0 {
			firstNumber = len(nlu.Entities)
		}
		nlu.Entities = append(nlu.Entities, dialog.Entity{
			Type:   "YANDEX.NUMBER",
			Tokens: dialog.Span{Start: start, End: i + 1},
			Value:  json.RawMessage(strconv.Itoa(n)),
		})
	}

	if firstNumber >= 0 {
		e := nlu.Entities[firstNumber]
		slot := map[string]dialog.Slot{}
		name, slotName := scenario.IntentAnswer, scenario.SlotAnswer
		if slices.Contains(tokens, "вариант") {
			name, slotName = scenario.IntentSelectVariant, scenario.SlotVariant
			if _, ok := nlu.Intents[scenario.IntentSayAgain]; ok {
				// "повтори вариант 3" re-reads an option instead of repeating the screen
				delete(nlu.Intents, scenario.IntentSayAgain)
				name = scenario.IntentRepeatVariant
			}
		}
		slot[slotName] = dialog.Slot{Type: e.Type, Tokens: &dialog.Span{Start: e.Tokens.Start, End: e.Tokens.End}, Value: e.Value}
		nlu.Intents[name] = dialog.Intent{Slots: slot}
	}
	return nlu
}
