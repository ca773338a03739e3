// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package translit produces ASCII transliterations of catalog names.
//
// # Usage
//
// Authors and artworks carry a `name_en` field alongside the stored name.
// When the ingestion input does not provide one, this package derives a
// readable ASCII fallback (GOST-style for Cyrillic, accent stripping for
// Latin scripts).
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cyrillic maps Russian letters to their romanized counterparts.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// From converts an arbitrary Unicode string into a readable ASCII form.
//
// # Transformation Pipeline
//
// 1. Romanizes Cyrillic letters (case-preserving).
// 2. Normalizes to NFD and strips combining marks (é → e).
// 3. Drops any remaining non-ASCII runes.
func From(s string) string {
	var romanized strings.Builder
	for _, r := range s {
		lower := unicode.ToLower(r)
		replacement, ok := cyrillic[lower]
		if !ok {
			romanized.WriteRune(r)
			continue
		}
		if r != lower && replacement != "" {
			replacement = strings.ToUpper(replacement[:1]) + replacement[1:]
		}
		romanized.WriteString(replacement)
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, romanized.String())

	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, result)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
