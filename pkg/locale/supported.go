package locale

import "sort"

// DefaultName is used whenever a saved locale is missing or unsupported.
const DefaultName = "en_US"

// Language pairs a locale identifier with the name shown in the language
// picker.
type Language struct {
	Locale string
	Name   string
}

var supportedLangs = map[string]string{
	"zh_CN": "Chinese Simplified",
	"en_US": "English",
	"es_ES": "Español",
	"be_BY": "Беларуская",
	"cs_CZ": "Czech",
	"de_DE": "Deutsch",
	"nl_NL": "Dutch",
	"fr_FR": "Française",
	"id_ID": "Bahasa Indonesia",
	"it_IT": "Italiano",
	"ja_JP": "日本語",
	"ru_RU": "Русский",
	"rs_RS": "Српски",
	"fi_FI": "Suomi",
	"sv_SE": "Svenska",
	"th_TH": "ภาษาไทย",
	"tr_TR": "Türkçe",
	"vi_VI": "Tiếng việt",
	"ko_KR": "한국어",
}

// Supported lists the UI languages ordered by locale identifier.
func Supported() []Language {
	langs := make([]Language, 0, len(supportedLangs))
	for loc, name := range supportedLangs {
		langs = append(langs, Language{Locale: loc, Name: name})
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Locale < langs[j].Locale })
	return langs
}

func IsSupported(name string) bool {
	_, ok := supportedLangs[name]
	return ok
}

// LanguageName returns the picker name for a locale, or the default
// locale's name when the locale is unsupported.
func LanguageName(name string) string {
	if lang, ok := supportedLangs[name]; ok {
		return lang
	}
	return supportedLangs[DefaultName]
}

// NameByLanguage maps a picker name back to its locale identifier.
func NameByLanguage(language string) string {
	for loc, name := range supportedLangs {
		if name == language {
			return loc
		}
	}
	return DefaultName
}

// Next returns the supported locale after name in Supported order, wrapping
// around. Unsupported names start from the first entry.
func Next(name string) string {
	langs := Supported()
	for i, l := range langs {
		if l.Locale == name {
			return langs[(i+1)%len(langs)].Locale
		}
	}
	return langs[0].Locale
}
