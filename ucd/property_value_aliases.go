package ucd

import (
	"fmt"
	"io"
)

// ParseValueAliases parses the records of the PropertyValueAliases.txt whose
// first field matches category and returns the aliases they define.
//
// https://www.unicode.org/reports/tr44/#Property_Value_Aliases
// > In PropertyValueAliases.txt, the first field contains the abbreviated
// > alias for a Unicode property, the second field specifies an abbreviated
// > symbolic name for a value of that property, and the third field specifies
// > the long symbolic name for that value of that property.
//
// Which of the two names is the canonical one depends on the property: for
// general categories the short form is canonical and the long form is the
// alias, for scripts it is the other way around. primaryValueIsFirst selects
// the canonical field.
//
// values holds the canonical names discovered from the other data files;
// unions may add further admissible canonical names (the general category
// unions). An alias whose canonical name appears in neither is dropped.
func ParseValueAliases(r io.Reader, category string, values []string, unions []*Alias, primaryValueIsFirst bool) ([]*Alias, error) {
	var aliases []*Alias
	appendAlias := func(alias, value string) {
		// The value alias file contains records such as "sc ; Ahom ; Ahom",
		// which add nothing.
		if alias == value {
			return
		}
		if !containsString(values, value) && !containsUnion(unions, value) {
			return
		}
		aliases = append(aliases, &Alias{Property: value, Alias: alias})
	}

	p := newParser(r)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		if p.fields[0].symbol() != category {
			continue
		}
		if len(p.fields) != 3 && len(p.fields) != 4 {
			return nil, newParseError(p.row, fmt.Errorf("a PropertyValueAliases record must have 3 or 4 fields, but has %v", len(p.fields)))
		}

		value := p.fields[1].symbol()
		alias := p.fields[2].symbol()
		if !primaryValueIsFirst {
			value, alias = alias, value
		}
		appendAlias(alias, value)
		if len(p.fields) == 4 {
			appendAlias(p.fields[3].symbol(), value)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return aliases, nil
}

func containsUnion(unions []*Alias, name string) bool {
	for _, u := range unions {
		if u.Alias == name {
			return true
		}
	}
	return false
}
