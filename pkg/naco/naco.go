// Copyright (c) 2026 Fondren Library. All rights reserved.

// Package naco implements NACO-style normalization of name headings.
//
// # Usage
//
// Normalized forms are stored next to every name and variant so that
// headings can be matched and sorted independent of case, diacritics,
// and punctuation. The same function is applied to search labels.
package naco

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// specials maps letters the NACO rules expand or substitute rather than
// decompose. NFD leaves these untouched, so they are handled explicitly.
var specials = map[rune]string{
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'þ': "th",
	'ð': "d",
	'đ': "d",
	'ł': "l",
	'ı': "i",
	'ß': "ss",
}

// superscripts maps superscript and subscript digits to their plain forms.
var superscripts = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'₀': '0', '₁': '1', '₂': '2', '₃': '3', '₄': '4',
	'₅': '5', '₆': '6', '₇': '7', '₈': '8', '₉': '9',
}

// Normalize converts a display heading into its NACO comparison form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and strips combining marks (é → e).
// 2. Folds the result to lowercase.
// 3. Substitutes special cataloging letters (æ → ae, ß → ss, ...).
// 4. Deletes apostrophes and keeps only the first comma.
// 5. Replaces remaining punctuation and symbols with spaces.
// 6. Collapses whitespace runs and trims the ends.
//
// The function is pure and total: any Unicode input yields a result,
// there is no error path.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	decomposed, _, _ := transform.String(t, s)
	decomposed = strings.ToLower(decomposed)

	var b strings.Builder
	b.Grow(len(decomposed))
	sawComma := false

	for _, r := range decomposed {
		if expansion, ok := specials[r]; ok {
			b.WriteString(expansion)
			continue
		}
		if plain, ok := superscripts[r]; ok {
			b.WriteRune(plain)
			continue
		}

		switch {
		case r == '\'' || r == '’':
			// Apostrophes are deleted outright so "John's" sorts as "johns".
		case r == ',':
			// NACO retains the first comma as a subfield hint.
			if !sawComma {
				b.WriteRune(r)
				sawComma = true
			} else {
				b.WriteRune(' ')
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
