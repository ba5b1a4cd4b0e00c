package locale

import "golang.org/x/text/language"

// Language is one of the built-in interface languages.
type Language struct {
	ID   string
	Tag  language.Tag
	Name string
	File string
}

var languages = []Language{
	{ID: "en", Tag: language.English, Name: "English", File: "messages_en.json"},
	{ID: "es", Tag: language.Spanish, Name: "Spanish", File: "messages_es.json"},
	{ID: "ja", Tag: language.Japanese, Name: "Japanese", File: "messages_jp.json"},
}

// Languages returns the built-in languages in menu order
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// DefaultLanguage returns English
func DefaultLanguage() Language {
	return languages[0]
}

// LanguageByID finds a built-in language by its ID or by any BCP 47 tag
// that matches it (for example "es-MX" or "ja-JP").
func LanguageByID(id string) (Language, bool) {
	for _, lang := range languages {
		if lang.ID == id {
			return lang, true
		}
	}

	tag, err := language.Parse(id)
	if err != nil {
		return Language{}, false
	}
	base, _ := tag.Base()
	for _, lang := range languages {
		if langBase, _ := lang.Tag.Base(); langBase == base {
			return lang, true
		}
	}
	return Language{}, false
}
