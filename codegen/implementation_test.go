package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nihei9/ucdgen/ucd"
)

func newImplementationTestUCD(t *testing.T) *ucd.UCD {
	t.Helper()

	specialCasing := `00DF; 00DF; 0053 0073; 0053 0053; # LATIN SMALL LETTER SHARP S
`
	unicodeData := `0030;DIGIT ZERO;Nd;0;EN;;0;0;0;N;;;;;
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
00DF;LATIN SMALL LETTER SHARP S;Ll;0;L;;;;;N;;;;;
3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
4DBF;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
`

	db := ucd.NewUCD()
	err := ucd.ParseSpecialCasing(strings.NewReader(specialCasing), db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = ucd.ParsePropList(strings.NewReader("0030..0039 ; Digit\n"), db.PropList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = ucd.ParsePropList(strings.NewReader("0041..005A ; Latin\n"), db.ScriptList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = ucd.ParseUnicodeData(strings.NewReader(unicodeData), db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	db.GeneralCategoryAliases = []*ucd.Alias{
		{Property: "Lu", Alias: "Uppercase_Letter"},
	}
	db.ScriptAliases = []*ucd.Alias{
		{Property: "Latin", Alias: "Latn"},
	}

	return db
}

func TestGenImplementation(t *testing.T) {
	db := newImplementationTestUCD(t)
	implementation := string(GenImplementation(db))

	wants := []string{
		"static constexpr Array<SpecialCasing, 1> s_special_casing { {",
		// Lowercase, uppercase, and titlecase mappings, each followed by its
		// size; empty lists render as "{}, 0".
		`
    { 0xdf, { 0xdf }, 1, { 0x53, 0x53 }, 2, { 0x53, 0x73 }, 2, Locale::None, Condition::None },`,
		"static constexpr Array<UnicodeData, 5> s_unicode_data { {",
		`
    { 0x30, "DIGIT ZERO", GeneralCategory::Nd, 0x30, 0x30, {}, 0, Property::ASCII | Property::Digit, Script::Unknown, {}, 0, WordBreakProperty::Other },`,
		// An absent uppercase mapping falls back to the code point itself.
		`
    { 0x41, "LATIN CAPITAL LETTER A", GeneralCategory::Lu, 0x41, 0x61, {}, 0, Property::ASCII, Script::Latin, {}, 0, WordBreakProperty::Other },`,
		`
    { 0xdf, "LATIN SMALL LETTER SHARP S", GeneralCategory::Ll, 0xdf, 0xdf, { &s_special_casing[0] }, 1, Property::Assigned, Script::Unknown, {}, 0, WordBreakProperty::Other },`,
		// The First/Last rows stay in the table under their stripped name.
		`
    { 0x3400, "CJK Ideograph Extension A", GeneralCategory::Lo, 0x3400, 0x3400, {}, 0, Property::Assigned, Script::Unknown, {}, 0, WordBreakProperty::Other },`,
		`
    { 0x4dbf, "CJK Ideograph Extension A", GeneralCategory::Lo, 0x4dbf, 0x4dbf, {}, 0, Property::Assigned, Script::Unknown, {}, 0, WordBreakProperty::Other },`,
		"static HashMap<u32, UnicodeData const*> const& ensure_code_point_map()",
		// Strictly interior code points fall through to the range scan; the
		// endpoints themselves are handled by the map.
		`
    if ((code_point > 0x3400) && (code_point < 0x4dbf))
        return 0x3400;`,
		`
    if (auto index = index_of_code_point_in_range(code_point); index.has_value()) {
        auto data_for_range = *(code_point_to_data_map.get(*index).value());
        data_for_range.simple_uppercase_mapping = code_point;
        data_for_range.simple_lowercase_mapping = code_point;
        return data_for_range;
    }`,
		`
    if (property == "Assigned"sv)
        return Property::Assigned;`,
		`
    if (property == "ASCII"sv)
        return Property::ASCII;`,
		`
    if (general_category == "Nd"sv)
        return GeneralCategory::Nd;`,
		`
    if (general_category == "L"sv)
        return GeneralCategory::L;`,
		`
    if (general_category == "Uppercase_Letter"sv)
        return GeneralCategory::Uppercase_Letter;`,
		`
    if (script == "Unknown"sv)
        return Script::Unknown;`,
		`
    if (script == "Latn"sv)
        return Script::Latn;`,
	}
	for _, want := range wants {
		if !strings.Contains(implementation, want) {
			t.Fatalf("the implementation must contain:\n%v\ngot:\n%v", want, implementation)
		}
	}
}

// Every range endpoint must be a real row of the code point table; otherwise
// the strict comparisons of index_of_code_point_in_range would make endpoint
// lookups miss.
func TestGenImplementation_rangeEndpointsHaveEntries(t *testing.T) {
	db := newImplementationTestUCD(t)
	for _, r := range db.CodePointRanges {
		for _, endpoint := range []rune{r.From, r.To} {
			found := false
			for _, data := range db.CodePointData {
				if data.CodePoint == endpoint {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("the endpoint %#x of the range %#x..%#x has no code point entry", endpoint, r.From, r.To)
			}
		}
	}
}

func TestGenImplementation_deterministic(t *testing.T) {
	i1 := GenImplementation(newImplementationTestUCD(t))
	i2 := GenImplementation(newImplementationTestUCD(t))
	if !bytes.Equal(i1, i2) {
		t.Fatalf("two runs over identical inputs must generate identical implementations")
	}
}
