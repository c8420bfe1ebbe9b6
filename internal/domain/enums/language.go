package enums

import "strings"

// Language is the closed set of languages posts can be stored and
// translated in.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
	LanguageSpanish Language = "es"
)

// DefaultLanguage is assumed for posts that do not declare a source language.
const DefaultLanguage = LanguageFrench

var languageNames = map[Language]string{
	LanguageFrench:  "French",
	LanguageEnglish: "English",
	LanguageArabic:  "Arabic",
	LanguageSpanish: "Spanish",
}

// Languages returns all supported languages in a stable order.
func Languages() []Language {
	return []Language{LanguageFrench, LanguageEnglish, LanguageArabic, LanguageSpanish}
}

func ParseLanguage(value string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(value)))
	_, ok := languageNames[lang]
	return lang, ok
}

// Name returns the English name of the language for use in prompts.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return languageNames[DefaultLanguage]
}

func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}
