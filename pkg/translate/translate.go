// Package translate renders farming text in Tamil or Hindi from a fixed
// phrase book and term dictionary.
package translate

import (
	"fmt"
	"regexp"
	"strings"
)

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages lists the display languages, English first.
func Languages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "tamil", Name: "தமிழ்"},
		{Code: "hindi", Name: "हिंदी"},
	}
}

type entry struct{ en, tr string }

type dictionary struct {
	phrases map[string]string
	terms   []term
}

type term struct {
	rx *regexp.Regexp
	tr string
}

var dictionaries = map[string]dictionary{
	"tamil": build(tamilTerms, tamilPhrases),
	"hindi": build(hindiTerms, hindiPhrases),
}

func build(terms, phrases []entry) dictionary {
	d := dictionary{phrases: make(map[string]string, len(phrases))}
	for _, p := range phrases {
		d.phrases[p.en] = p.tr
	}
	for _, t := range terms {
		d.terms = append(d.terms, term{rx: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t.en) + `\b`), tr: t.tr})
	}
	return d
}

// Translate returns the phrase book entry for text when there is one.
// Otherwise each dictionary term is replaced as a whole word, ignoring case,
// and the rest of the text is left in English.
func Translate(text, lang string) (string, error) {
	d, ok := dictionaries[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return "", fmt.Errorf("unsupported language %q", lang)
	}
	if tr, ok := d.phrases[text]; ok {
		return tr, nil
	}
	out := text
	for _, t := range d.terms {
		out = t.rx.ReplaceAllLiteralString(out, t.tr)
	}
	return out, nil
}
