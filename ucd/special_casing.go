package ucd

import (
	"fmt"
	"io"
	"strings"
)

// SpecialCasing represents a record of the SpecialCasing.txt. It holds the
// case mappings that cannot be expressed as a single code point, optionally
// restricted to a locale or a casing context.
//
// https://www.unicode.org/reports/tr44/#SpecialCasing.txt
type SpecialCasing struct {
	Index            int
	CodePoint        rune
	LowercaseMapping []rune
	UppercaseMapping []rune
	TitlecaseMapping []rune
	Locale           string
	Condition        string
}

// ParseSpecialCasing parses the SpecialCasing.txt.
func ParseSpecialCasing(r io.Reader, db *UCD) error {
	p := newParser(r)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		if len(p.fields) != 5 && len(p.fields) != 6 {
			return newParseError(p.row, fmt.Errorf("a SpecialCasing record must have 5 or 6 fields, but has %v", len(p.fields)))
		}

		casing := &SpecialCasing{
			Index: len(db.SpecialCasing),
		}
		var err error
		casing.CodePoint, err = p.fields[0].codePoint()
		if err != nil {
			return newParseError(p.row, err)
		}
		casing.LowercaseMapping, err = p.fields[1].codePointList()
		if err != nil {
			return newParseError(p.row, err)
		}
		casing.TitlecaseMapping, err = p.fields[2].codePointList()
		if err != nil {
			return newParseError(p.row, err)
		}
		casing.UppercaseMapping, err = p.fields[3].codePointList()
		if err != nil {
			return newParseError(p.row, err)
		}

		if condition := p.fields[4].symbol(); condition != "" {
			// The fifth field holds one or two tokens. A token consisting of
			// lowercase ASCII letters only is a locale; anything else is a
			// casing condition. When both appear, the locale comes first.
			conditions := strings.Fields(condition)
			switch {
			case len(conditions) == 2:
				casing.Locale = conditions[0]
				casing.Condition = conditions[1]
			case len(conditions) == 1:
				if isASCIILowerAlpha(conditions[0]) {
					casing.Locale = conditions[0]
				} else {
					casing.Condition = conditions[0]
				}
			default:
				return newParseError(p.row, fmt.Errorf("a condition field must have 1 or 2 tokens, but has %v", len(conditions)))
			}

			casing.Locale = strings.ToUpper(casing.Locale)
			casing.Condition = strings.ReplaceAll(casing.Condition, "_", "")

			if casing.Locale != "" && !containsString(db.Locales, casing.Locale) {
				db.Locales = append(db.Locales, casing.Locale)
			}
			if casing.Condition != "" && !containsString(db.Conditions, casing.Condition) {
				db.Conditions = append(db.Conditions, casing.Condition)
			}
		}

		db.LargestCasingTransformSize = maxInt(db.LargestCasingTransformSize, len(casing.LowercaseMapping))
		db.LargestCasingTransformSize = maxInt(db.LargestCasingTransformSize, len(casing.TitlecaseMapping))
		db.LargestCasingTransformSize = maxInt(db.LargestCasingTransformSize, len(casing.UppercaseMapping))

		db.SpecialCasing = append(db.SpecialCasing, casing)
	}
	return p.err
}

func isASCIILowerAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
