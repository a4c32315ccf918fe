package phrases

// SkillName is the name the skill introduces itself with.
const SkillName = "Математический мозговой тренажёр"

var apologies = []string{
	"Прошу прощения. ",
	"Простите меня. ",
	"Приношу свои извинения. ",
	"Извините. ",
	"",
}

var incomprehension = []string{
	"Я вас не поняла.",
	"Пожалуйста повторите еще раз.",
	"Пожалуйста, попробуйте переформулировать запрос.",
}

var praise = []string{
	"Вы ответили верно.\n",
	"Ваш ответ правильный.\n",
	"Браво, вы правы!\n",
	"Поздравляю вас, вы дали верный ответ!\n",
	"Этот ответ был правильный.\n",
}

var delights = []string{
	"Вот это да! ",
	"Ух ты! ",
	"Да я вижу здесь прирожденного математика! ",
	"Умные люди всегда привлекательны! ",
	"Вы на высоте! ",
	"Ваши умения поражают! ",
	"",
}

var consolations = []string{
	"Никто не идеален! ",
	"У тебя есть несколько ошибок, но ничего страшного. ",
	"Главное не опускать руки и все получится! ",
	"Ошибки делают нас сильнее. ",
	"",
}

var factOffers = []string{
	"Я знаю несколько интересных фактов, могу рассказать. ",
	"Могу поделиться с тобой сногшибательными фактами. ",
	"Я могу рассказать тебе то, чего ты, наверное, не знаешь. ",
	"Хочешь узнать что-то новое? ",
}

var playAgain = []string{
	"Или хочешь сыграть еще раз? ",
	"Или я бы посмотрела еще раз на тебя в действии, повторим? ",
	"Если не хочешь, у меня есть еще режимы, кроме этого. Попробуешь? ",
	"Или повторим? ",
	"Или же давай заново сыграем? ",
}

var answerPrompts = []string{
	"и так ваш ответ?",
	"ответом будет?",
	"пол+учится?",
	"ваш ответ?",
	"отвечайте",
	"пришло время ответа",
}

// Apology is the fallback reply used when no rule matched the utterance.
func (p *Picker) Apology() string {
	return p.One(apologies...) + p.One(incomprehension...) + ` Скажите "Повтори", чтобы я повторила.`
}

// Praise confirms a correct answer.
func (p *Picker) Praise() string {
	return p.One(praise...)
}

// Reveal discloses the expected answer after a wrong one.
func (p *Picker) Reveal(answer string) string {
	return p.One(
		"Верный ответ: "+answer+".\n",
		"Ваш ответ неверный, правильный ответ: "+answer+".\n",
		"Увы, вы ответили неправильно, ответом было "+answer+"\n",
		"Вы дали неверный ответ, верным был "+answer+"\n",
		"Этот ответ был неправильный. Верный ответ: "+answer+"\n",
	)
}

// Delight opens the all-correct screen.
func (p *Picker) Delight() string {
	return p.One(delights...)
}

// Consolation opens the partial-score screen.
func (p *Picker) Consolation() string {
	return p.One(consolations...)
}

// WhatNext offers a trivia fact and another run.
func (p *Picker) WhatNext() string {
	return p.One(factOffers...) + p.One(playAgain...)
}

// AnswerPrompt asks for the answer again after a spoken question.
func (p *Picker) AnswerPrompt() string {
	return p.One(answerPrompts...)
}
