// messages.go contains the user facing texts of the bot in every language.

package telegram

// labels is the set of texts rendered for one language.
type labels struct {
	Question       string
	Of             string
	Summary        string
	Answered       string
	Correct        string
	RunningPercent string
	TotalPercent   string
	Score          string
	VerdictCorrect string
	VerdictWrong   string
	Solution       string
	Previous       string
	Next           string
	Submit         string
	ShowSolution   string
	HideSolution   string
	JumpTo         string
	JumpPrompt     string
	Restart        string
	Welcome        string
	Help           string
	NoSession      string
	UnknownCommand string
	UseLang        string
	InternalError  string
}

var messages = map[string]labels{
	"de": {
		Question:       "Frage",
		Of:             "von",
		Summary:        "📋 Auswertung",
		Answered:       "Beantwortet",
		Correct:        "Richtig",
		RunningPercent: "Quote der beantworteten Fragen",
		TotalPercent:   "Quote aller Fragen",
		Score:          "Punkte",
		VerdictCorrect: "✅ Richtig!",
		VerdictWrong:   "❌ Leider falsch.",
		Solution:       "Lösung",
		Previous:       "◀️ Zurück",
		Next:           "Weiter ▶️",
		Submit:         "✔️ Prüfen",
		ShowSolution:   "💡 Lösung",
		HideSolution:   "🙈 Lösung",
		JumpTo:         "🔢 Frage Nr.",
		JumpPrompt:     "Sprung zu Frage",
		Restart:        "🔄 Neu starten",
		Welcome:        "Willkommen zum Jagdfrageprüfer! Wähle die Antworten mit den Buchstaben und prüfe sie mit ✔️.",
		Help:           "/start – Fragenkatalog neu starten\n/jump – zu einer Frage springen\n/lang de|en – Sprache wechseln\n\nTasten: a–l Antwort wählen, ? prüfen, ! Lösung, ← → blättern. Eine Zahl springt direkt zur Frage.",
		NoSession:      "Bitte zuerst /start senden.",
		UnknownCommand: "Unbekannter Befehl. /help zeigt alle Befehle.",
		UseLang:        "Verwendung: /lang de oder /lang en.",
		InternalError:  "Etwas ist schiefgelaufen. Bitte später erneut versuchen.",
	},
	"en": {
		Question:       "Question",
		Of:             "of",
		Summary:        "📋 Summary",
		Answered:       "Answered",
		Correct:        "Correct",
		RunningPercent: "Rate of answered questions",
		TotalPercent:   "Rate of all questions",
		Score:          "Score",
		VerdictCorrect: "✅ Correct!",
		VerdictWrong:   "❌ Wrong.",
		Solution:       "Solution",
		Previous:       "◀️ Back",
		Next:           "Next ▶️",
		Submit:         "✔️ Check",
		ShowSolution:   "💡 Solution",
		HideSolution:   "🙈 Solution",
		JumpTo:         "🔢 Question no.",
		JumpPrompt:     "Jump to question",
		Restart:        "🔄 Restart",
		Welcome:        "Welcome to the hunting exam trainer! Pick answers with the letters and check them with ✔️.",
		Help:           "/start – restart the question set\n/jump – jump to a question\n/lang de|en – switch language\n\nKeys: a–l select an answer, ? check, ! solution, ← → navigate. A number jumps straight to that question.",
		NoSession:      "Please send /start first.",
		UnknownCommand: "Unknown command. /help lists all commands.",
		UseLang:        "Usage: /lang de or /lang en.",
		InternalError:  "Something went wrong. Please try again later.",
	},
}

// labelsFor returns the texts of lang, falling back to German.
func labelsFor(lang string) labels {
	if l, ok := messages[lang]; ok {
		return l
	}
	return messages["de"]
}
