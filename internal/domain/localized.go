package domain

import "strings"

// LocalizedText maps a language code ("es", "pt") to a translation.
type LocalizedText map[string]string

// Get returns the translation for lang, falling back to fallback and then to
// any non-empty value.
func (t LocalizedText) Get(lang, fallback string) string {
	if v := strings.TrimSpace(t[lang]); v != "" {
		return v
	}
	if v := strings.TrimSpace(t[fallback]); v != "" {
		return v
	}
	for _, v := range t {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Prices maps an ISO 4217 currency code to an amount.
type Prices map[string]float64

func (p Prices) Amount(currency string) (float64, bool) {
	v, ok := p[strings.ToUpper(currency)]
	return v, ok
}
