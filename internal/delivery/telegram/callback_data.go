package telegram

import (
	"strings"
)

// Callback action constants.
const (
	actionKey   = "key"   // key press routed through the keyboard router
	actionLang  = "lang"  // display language switch
	actionJump  = "jump"  // focus the question number field
	actionStart = "start" // restart the session
	actionNoop  = "noop"  // visible but disabled control
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildKeyCallback builds callback data for a key press.
func buildKeyCallback(key string) string {
	return callbackData{Action: actionKey, Params: []string{key}}.encode()
}

// buildLangCallback builds callback data for switching the language.
func buildLangCallback(lang string) string {
	return callbackData{Action: actionLang, Params: []string{lang}}.encode()
}

func buildJumpCallback() string {
	return actionJump
}

func buildStartCallback() string {
	return actionStart
}

func buildNoopCallback() string {
	return actionNoop
}
