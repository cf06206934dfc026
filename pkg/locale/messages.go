package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// The English text doubles as the message key, so a missing translation
// prints the English label.
const neverKey = "Never"

var neverTranslations = map[language.Tag]string{
	language.German:     "Nie",
	language.Spanish:    "Nunca",
	language.French:     "Jamais",
	language.Italian:    "Mai",
	language.Dutch:      "Nooit",
	language.Russian:    "Никогда",
	language.Swedish:    "Aldrig",
	language.Finnish:    "Ei koskaan",
	language.Turkish:    "Asla",
	language.Czech:      "Nikdy",
	language.Indonesian: "Tidak pernah",
	language.Vietnamese: "Không bao giờ",
	language.Chinese:    "从不",
	language.Japanese:   "なし",
	language.Korean:     "없음",
	language.Thai:       "ไม่มีกำหนด",
}

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, text := range neverTranslations {
		if err := b.SetString(tag, neverKey, text); err != nil {
			panic(err)
		}
	}
	return b
}

// Never returns the label shown in place of a date for timestamps at or
// beyond NeverSentinel.
func (l Locale) Never() string {
	return message.NewPrinter(l.Tag, message.Catalog(messages)).Sprintf(neverKey)
}
