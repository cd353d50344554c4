package ucd

import (
	"fmt"
	"io"
	"strings"
)

// ParsePropAliases parses the PropertyAliases.txt.
//
// The file groups its records into sections announced by comment lines like
// "# Binary Properties". Only the Binary Properties section contributes
// aliases; the other sections name non-binary properties that the property
// list never holds.
//
// https://www.unicode.org/reports/tr44/#PropertyAliases.txt
func ParsePropAliases(r io.Reader, db *UCD) error {
	appendAlias := func(alias, property string) {
		// The alias files contain records such as "Hyphen ; Hyphen", which
		// add nothing.
		if alias == property {
			return
		}
		// A UCD edition occasionally lists aliases for properties that no
		// parsed file defines. Those are dropped.
		if !db.PropList.contains(property) {
			return
		}
		db.PropAliases = append(db.PropAliases, &Alias{Property: property, Alias: alias})
	}

	var section string
	p := newParser(r)
	p.exposeComments = true
	for p.parse() {
		if p.comment != "" {
			if strings.HasSuffix(p.comment, "Properties") && len(p.comment) > 2 {
				section = p.comment[2:]
			}
			continue
		}
		if len(p.fields) == 0 || section != "Binary Properties" {
			continue
		}
		if len(p.fields) != 2 && len(p.fields) != 3 {
			return newParseError(p.row, fmt.Errorf("a PropertyAliases record must have 2 or 3 fields, but has %v", len(p.fields)))
		}

		property := p.fields[1].symbol()
		appendAlias(p.fields[0].symbol(), property)
		if len(p.fields) == 3 {
			appendAlias(p.fields[2].symbol(), property)
		}
	}
	return p.err
}
