package translator

import "github.com/abadojack/whatlanggo"

// DetectLanguage guesses the ISO 639-1 code of text locally. It returns "" when
// the guess is unreliable. The result is informational; requests still send the
// configured source language.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
