package ucd

import (
	"fmt"
	"io"
	"strings"
)

// ParsePropList parses data files that map code point ranges to a single
// property name per record: PropList.txt, DerivedCoreProperties.txt,
// DerivedBinaryProperties.txt, emoji-data.txt, Scripts.txt, and
// WordBreakProperty.txt. Records from successive calls against the same list
// accumulate into the same buckets.
//
// https://www.unicode.org/reports/tr44/#PropList.txt
func ParsePropList(r io.Reader, list *PropList) error {
	return parsePropList(r, list, false)
}

// ParseMultiValuePropList parses ScriptExtensions.txt, whose second field
// holds a space-separated list of property names instead of a single name.
//
// https://www.unicode.org/reports/tr44/#ScriptExtensions.txt
func ParseMultiValuePropList(r io.Reader, list *PropList) error {
	return parsePropList(r, list, true)
}

func parsePropList(r io.Reader, list *PropList, multiValue bool) error {
	p := newParser(r)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		if len(p.fields) != 2 {
			return newParseError(p.row, fmt.Errorf("a property record must have 2 fields, but has %v", len(p.fields)))
		}

		cp, err := p.fields[0].codePointRange()
		if err != nil {
			return newParseError(p.row, err)
		}

		var props []string
		if multiValue {
			props = strings.Fields(p.fields[1].symbol())
		} else {
			props = []string{p.fields[1].symbol()}
		}

		for _, prop := range props {
			list.add(prop, cp)
		}
	}
	return p.err
}
