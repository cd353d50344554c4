package codegen

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/nihei9/ucdgen/ucd"
)

func newHeaderTestUCD(t *testing.T) *ucd.UCD {
	t.Helper()

	db := ucd.NewUCD()
	db.Locales = []string{"TR", "AZ"}
	db.Conditions = []string{"MoreAbove", "FinalSigma"}
	db.GeneralCategories = []string{"Nd", "Lu", "Ll"}
	db.GeneralCategoryAliases = []*ucd.Alias{
		{Property: "Lu", Alias: "Uppercase_Letter"},
	}
	db.PropAliases = []*ucd.Alias{
		{Property: "AHex", Alias: "Hex"},
	}
	db.ScriptAliases = []*ucd.Alias{
		{Property: "Latin", Alias: "Latn"},
	}
	db.LargestCasingTransformSize = 3
	db.LargestSpecialCasingSize = 2
	db.LargestScriptExtensionsSize = 4

	err := ucd.ParsePropList(strings.NewReader("0041..0046 ; AHex\n"), db.PropList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = ucd.ParsePropList(strings.NewReader("0041..005A ; Latin\n0370..0373 ; Greek\n"), db.ScriptList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = ucd.ParsePropList(strings.NewReader("0030..0039 ; Numeric\n"), db.WordBreakPropList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return db
}

func TestGenHeader(t *testing.T) {
	db := newHeaderTestUCD(t)
	header := string(GenHeader(db))

	// Members are sorted; the default member comes first.
	wants := []string{
		`
enum class Locale {
    None,
    AZ,
    TR,
};
`,
		`
enum class Condition {
    None,
    FinalSigma,
    MoreAbove,
};
`,
		`
using GeneralCategoryUnderlyingType = u64;

enum class GeneralCategory : GeneralCategoryUnderlyingType {
    None,
    Ll = static_cast<GeneralCategoryUnderlyingType>(1) << 0,
    Lu = static_cast<GeneralCategoryUnderlyingType>(1) << 1,
    Nd = static_cast<GeneralCategoryUnderlyingType>(1) << 2,
    C = Cc | Cf | Cs | Co,
    L = Lu | Ll | Lt | Lm | Lo,
    LC = Ll | Lu | Lt,
    M = Mn | Mc | Me,
    N = Nd | Nl | No,
    P = Pc | Pd | Ps | Pe | Pi | Pf | Po,
    S = Sm | Sc | Sk | So,
    Z = Zs | Zl | Zp,
    Uppercase_Letter = Lu,
};
`,
		`
constexpr GeneralCategory operator&(GeneralCategory value1, GeneralCategory value2)
{
    return static_cast<GeneralCategory>(static_cast<GeneralCategoryUnderlyingType>(value1) & static_cast<GeneralCategoryUnderlyingType>(value2));
}

constexpr GeneralCategory operator|(GeneralCategory value1, GeneralCategory value2)
{
    return static_cast<GeneralCategory>(static_cast<GeneralCategoryUnderlyingType>(value1) | static_cast<GeneralCategoryUnderlyingType>(value2));
}
`,
		`
enum class Property : PropertyUnderlyingType {
    Assigned,
    AHex = static_cast<PropertyUnderlyingType>(1) << 0,
    ASCII = static_cast<PropertyUnderlyingType>(1) << 1,
    Any = static_cast<PropertyUnderlyingType>(1) << 2,
    Hex = AHex,
};
`,
		`
enum class Script {
    Greek,
    Latin,
    Unknown,
    Latn = Latin,
};
`,
		`
enum class WordBreakProperty {
    Other,
    Numeric,
};
`,
		"    u32 lowercase_mapping[3];",
		"    u32 titlecase_mapping[3];",
		"    SpecialCasing const* special_casing[2] {};",
		"    Script script_extensions[4];",
		"    char const* name;",
		"    GeneralCategory general_category;",
		"    u32 simple_uppercase_mapping;",
		"    u32 simple_lowercase_mapping;",
		`
namespace Detail {

Optional<UnicodeData> unicode_data_for_code_point(u32 code_point);
Optional<Property> property_from_string(StringView const& property);
Optional<GeneralCategory> general_category_from_string(StringView const& general_category);
Optional<Script> script_from_string(StringView const& script);

}
`,
	}
	for _, want := range wants {
		if !strings.Contains(header, want) {
			t.Fatalf("the header must contain:\n%v\ngot:\n%v", want, header)
		}
	}

	// Fields outside the allow list stay out of the generated struct.
	for _, unwanted := range []string{
		"bidi_class",
		"numeric_value_decimal",
		"simple_titlecase_mapping;",
		"unicode_1_name",
	} {
		if strings.Contains(header, unwanted) {
			t.Fatalf("the header must not contain %v", unwanted)
		}
	}
}

func TestGenHeader_deterministic(t *testing.T) {
	h1 := GenHeader(newHeaderTestUCD(t))
	h2 := GenHeader(newHeaderTestUCD(t))
	if !bytes.Equal(h1, h2) {
		t.Fatalf("two runs over identical inputs must generate identical headers")
	}
}

func TestGenHeader_tooManyBitmaskMembers(t *testing.T) {
	db := ucd.NewUCD()
	var b strings.Builder
	// Any and ASCII are pre-seeded, so 63 more properties cross the 64-member
	// limit of the bitmask representation.
	for i := 0; i < 63; i++ {
		fmt.Fprintf(&b, "0041 ; Prop%02d\n", i)
	}
	err := ucd.ParsePropList(strings.NewReader(b.String()), db.PropList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("a panic is expected")
		}
	}()
	GenHeader(db)
}
