package ucd

import (
	"fmt"
	"io"
	"strings"
)

// CodePointData represents a record of the UnicodeData.txt plus the properties
// joined onto it from the other data files.
//
// https://www.unicode.org/reports/tr44/#UnicodeData.txt
type CodePointData struct {
	CodePoint               rune
	Name                    string
	GeneralCategory         string
	CanonicalCombiningClass uint8
	BidiClass               string
	DecompositionType       string
	// -1 represents an empty field.
	NumericValueDecimal int8
	NumericValueDigit   int8
	NumericValueNumeric int8
	BidiMirrored        bool
	Unicode1Name        string
	ISOComment          string
	// 0 represents an empty field. The emitter substitutes the code point
	// itself for an absent mapping.
	SimpleUppercaseMapping rune
	SimpleLowercaseMapping rune
	SimpleTitlecaseMapping rune

	SpecialCasingIndices []int
	PropList             []string
	Script               string
	ScriptExtensions     []string
	WordBreakProperty    string
}

// ParseUnicodeData parses the UnicodeData.txt and joins the properties parsed
// from the other data files onto each record. Parse it after every property
// list is complete.
//
// Some code points are excluded from UnicodeData.txt and instead represented
// by a pair of records whose names carry First/Last markers:
//
//	3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
//	4DBF;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
//
// Each such pair contributes a range descriptor, and both of its records stay
// in the code point table with the markers stripped from their names.
func ParseUnicodeData(r io.Reader, db *UCD) error {
	var rangeStart rune
	rangeOpen := false

	p := newParser(r)
	for p.parse() {
		if len(p.fields) == 0 {
			continue
		}
		if len(p.fields) != 15 {
			return newParseError(p.row, fmt.Errorf("a UnicodeData record must have 15 fields, but has %v", len(p.fields)))
		}

		data := &CodePointData{}
		var err error
		data.CodePoint, err = p.fields[0].codePoint()
		if err != nil {
			return newParseError(p.row, err)
		}
		data.Name = p.fields[1].symbol()
		data.GeneralCategory = p.fields[2].symbol()
		data.CanonicalCombiningClass, err = p.fields[3].uint8Value()
		if err != nil {
			return newParseError(p.row, err)
		}
		data.BidiClass = p.fields[4].symbol()
		data.DecompositionType = p.fields[5].symbol()
		data.NumericValueDecimal = p.fields[6].int8ValueOrMinusOne()
		data.NumericValueDigit = p.fields[7].int8ValueOrMinusOne()
		data.NumericValueNumeric = p.fields[8].int8ValueOrMinusOne()
		data.BidiMirrored = p.fields[9].symbol() == "Y"
		data.Unicode1Name = p.fields[10].symbol()
		data.ISOComment = p.fields[11].symbol()
		data.SimpleUppercaseMapping, err = p.fields[12].codePointOrZero()
		if err != nil {
			return newParseError(p.row, err)
		}
		data.SimpleLowercaseMapping, err = p.fields[13].codePointOrZero()
		if err != nil {
			return newParseError(p.row, err)
		}
		data.SimpleTitlecaseMapping, err = p.fields[14].codePointOrZero()
		if err != nil {
			return newParseError(p.row, err)
		}

		switch {
		case strings.HasPrefix(data.Name, "<") && strings.HasSuffix(data.Name, ", First>"):
			if rangeOpen {
				return newParseError(p.row, fmt.Errorf("the code point range opened at %#x is still open", rangeStart))
			}
			rangeOpen = true
			rangeStart = data.CodePoint
			data.Name = data.Name[1 : len(data.Name)-8]
		case strings.HasPrefix(data.Name, "<") && strings.HasSuffix(data.Name, ", Last>"):
			if !rangeOpen {
				return newParseError(p.row, fmt.Errorf("no code point range is open"))
			}
			db.CodePointRanges = append(db.CodePointRanges, &CodePointRange{
				From: rangeStart,
				To:   data.CodePoint,
			})
			data.Name = data.Name[1 : len(data.Name)-7]
			rangeOpen = false
		}

		for _, casing := range db.SpecialCasing {
			if casing.CodePoint == data.CodePoint {
				data.SpecialCasingIndices = append(data.SpecialCasingIndices, casing.Index)
			}
		}

		data.PropList = assignedProperties(data.CodePoint, db.PropList, "Assigned")
		data.Script = assignedProperty(data.CodePoint, db.ScriptList, "Unknown")
		data.ScriptExtensions = assignedProperties(data.CodePoint, db.ScriptExtensions, "")
		data.WordBreakProperty = assignedProperty(data.CodePoint, db.WordBreakPropList, "Other")

		db.LargestSpecialCasingSize = maxInt(db.LargestSpecialCasingSize, len(data.SpecialCasingIndices))
		db.LargestScriptExtensionsSize = maxInt(db.LargestScriptExtensionsSize, len(data.ScriptExtensions))

		if !containsString(db.GeneralCategories, data.GeneralCategory) {
			db.GeneralCategories = append(db.GeneralCategories, data.GeneralCategory)
		}

		db.CodePointData = append(db.CodePointData, data)
	}
	if p.err != nil {
		return p.err
	}
	if rangeOpen {
		return newParseError(p.row, fmt.Errorf("the code point range opened at %#x is never closed", rangeStart))
	}
	return nil
}

// assignedProperty scans list in insertion order and returns the name of the
// first entry one of whose ranges contains cp, or def when none does.
func assignedProperty(cp rune, list *PropList, def string) string {
	for _, name := range list.Names() {
		for _, r := range list.Ranges(name) {
			if r.From <= cp && cp <= r.To {
				return name
			}
		}
	}
	return def
}

// assignedProperties scans list in insertion order and accumulates the name of
// every entry one of whose ranges contains cp. When nothing matches and def is
// non-empty, the result is just def.
func assignedProperties(cp rune, list *PropList, def string) []string {
	var props []string
	for _, name := range list.Names() {
		for _, r := range list.Ranges(name) {
			if r.From <= cp && cp <= r.To {
				props = append(props, name)
				break
			}
		}
	}
	if len(props) == 0 && def != "" {
		props = append(props, def)
	}
	return props
}
