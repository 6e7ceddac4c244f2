package easylog

// Supported language identifiers.
const (
	LangJavaScript      = "javascript"
	LangJavaScriptReact = "javascriptreact"
	LangVue             = "vue"
	LangTypeScript      = "typescript"
)

var supportedLanguages = map[string]bool{
	LangJavaScript:      true,
	LangJavaScriptReact: true,
	LangVue:             true,
	LangTypeScript:      true,
}

// IsSupportedLanguage reports whether the command runs in documents of
// the given language.
func IsSupportedLanguage(languageID string) bool {
	return supportedLanguages[languageID]
}

// SupportedLanguages returns the supported language identifiers.
func SupportedLanguages() []string {
	return []string{LangJavaScript, LangJavaScriptReact, LangVue, LangTypeScript}
}

// CheckLanguage returns an ErrUnsupportedLanguage rejection for languages
// outside the supported set.
func CheckLanguage(languageID string) error {
	if IsSupportedLanguage(languageID) {
		return nil
	}
	return newReject(ErrUnsupportedLanguage, languageID)
}
