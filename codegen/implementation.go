package codegen

import (
	"fmt"
	"strings"

	"github.com/nihei9/ucdgen/ucd"
)

// GenImplementation generates the data artifact: the special casing and code
// point array literals, the lazily built code point map, the range fallback,
// and the string lookup functions.
func GenImplementation(db *ucd.UCD) []byte {
	g := newSourceGenerator()
	g.set("special_casing_size", fmt.Sprintf("%v", len(db.SpecialCasing)))
	g.set("code_point_data_size", fmt.Sprintf("%v", len(db.CodePointData)))

	g.append(`
#include <AK/Array.h>
#include <AK/CharacterTypes.h>
#include <AK/HashMap.h>
#include <AK/StringView.h>
#include <LibUnicode/UnicodeData.h>

namespace Unicode {
`)

	g.append(`
static constexpr Array<SpecialCasing, @special_casing_size@> s_special_casing { {`)

	for _, casing := range db.SpecialCasing {
		g.set("code_point", fmt.Sprintf("%#x", casing.CodePoint))
		g.append(`
    { @code_point@`)

		appendListAndSize(g, hexList(casing.LowercaseMapping))
		appendListAndSize(g, hexList(casing.UppercaseMapping))
		appendListAndSize(g, hexList(casing.TitlecaseMapping))

		locale := casing.Locale
		if locale == "" {
			locale = "None"
		}
		g.set("locale", locale)
		g.append(", Locale::@locale@")

		condition := casing.Condition
		if condition == "" {
			condition = "None"
		}
		g.set("condition", condition)
		g.append(", Condition::@condition@")

		g.append(" },")
	}

	g.append(`
} };

static constexpr Array<UnicodeData, @code_point_data_size@> s_unicode_data { {`)

	appendField := func(name, value string) {
		if !isDesiredField(name) {
			return
		}
		g.set("value", value)
		g.append(", @value@")
	}

	for _, data := range db.CodePointData {
		g.set("code_point", fmt.Sprintf("%#x", data.CodePoint))
		g.append(`
    { @code_point@`)

		appendField("name", fmt.Sprintf("%q", data.Name))
		appendField("general_category", fmt.Sprintf("GeneralCategory::%v", data.GeneralCategory))
		appendField("canonical_combining_class", fmt.Sprintf("%v", data.CanonicalCombiningClass))
		appendField("bidi_class", fmt.Sprintf("%q", data.BidiClass))
		appendField("decomposition_type", fmt.Sprintf("%q", data.DecompositionType))
		appendField("numeric_value_decimal", fmt.Sprintf("%v", data.NumericValueDecimal))
		appendField("numeric_value_digit", fmt.Sprintf("%v", data.NumericValueDigit))
		appendField("numeric_value_numeric", fmt.Sprintf("%v", data.NumericValueNumeric))
		appendField("bidi_mirrored", fmt.Sprintf("%v", data.BidiMirrored))
		appendField("unicode_1_name", fmt.Sprintf("%q", data.Unicode1Name))
		appendField("iso_comment", fmt.Sprintf("%q", data.ISOComment))
		appendField("simple_uppercase_mapping", fmt.Sprintf("%#x", codePointOr(data.SimpleUppercaseMapping, data.CodePoint)))
		appendField("simple_lowercase_mapping", fmt.Sprintf("%#x", codePointOr(data.SimpleLowercaseMapping, data.CodePoint)))
		appendField("simple_titlecase_mapping", fmt.Sprintf("%#x", codePointOr(data.SimpleTitlecaseMapping, data.CodePoint)))

		appendListAndSize(g, casingPointerList(data.SpecialCasingIndices))

		for i, prop := range data.PropList {
			if i == 0 {
				g.append(", ")
			} else {
				g.append(" | ")
			}
			g.append(fmt.Sprintf("Property::%v", prop))
		}

		g.append(fmt.Sprintf(", Script::%v", data.Script))
		appendListAndSize(g, scriptNameList(data.ScriptExtensions))
		g.append(fmt.Sprintf(", WordBreakProperty::%v", data.WordBreakProperty))
		g.append(" },")
	}

	g.append(`
} };

static HashMap<u32, UnicodeData const*> const& ensure_code_point_map()
{
    static HashMap<u32, UnicodeData const*> code_point_to_data_map;
    code_point_to_data_map.ensure_capacity(s_unicode_data.size());

    for (auto const& unicode_data : s_unicode_data)
        code_point_to_data_map.set(unicode_data.code_point, &unicode_data);

    return code_point_to_data_map;
}

static Optional<u32> index_of_code_point_in_range(u32 code_point)
{`)

	// The comparisons stay strict on purpose: the First/Last records of every
	// range are real rows of s_unicode_data, so the map handles the endpoints
	// and only interior code points fall through to here.
	for _, r := range db.CodePointRanges {
		g.set("first", fmt.Sprintf("%#x", r.From))
		g.set("last", fmt.Sprintf("%#x", r.To))
		g.append(`
    if ((code_point > @first@) && (code_point < @last@))
        return @first@;`)
	}

	g.append(`
    return {};
}

namespace Detail {

Optional<UnicodeData> unicode_data_for_code_point(u32 code_point)
{
    static auto const& code_point_to_data_map = ensure_code_point_map();
    VERIFY(is_unicode(code_point));

    if (auto data = code_point_to_data_map.get(code_point); data.has_value())
        return *(data.value());

    if (auto index = index_of_code_point_in_range(code_point); index.has_value()) {
        auto data_for_range = *(code_point_to_data_map.get(*index).value());
        data_for_range.simple_uppercase_mapping = code_point;
        data_for_range.simple_lowercase_mapping = code_point;
        return data_for_range;
    }

    return {};
}

Optional<Property> property_from_string(StringView const& property)
{
    if (property == "Assigned"sv)
        return Property::Assigned;`)

	for _, name := range db.PropList.Names() {
		g.set("property", name)
		g.append(`
    if (property == "@property@"sv)
        return Property::@property@;`)
	}
	for _, alias := range db.PropAliases {
		g.set("property", alias.Alias)
		g.append(`
    if (property == "@property@"sv)
        return Property::@property@;`)
	}

	g.append(`
    return {};
}

Optional<GeneralCategory> general_category_from_string(StringView const& general_category)
{`)

	for _, gc := range db.GeneralCategories {
		g.set("general_category", gc)
		g.append(`
    if (general_category == "@general_category@"sv)
        return GeneralCategory::@general_category@;`)
	}
	for _, union_ := range db.GeneralCategoryUnions {
		g.set("general_category", union_.Alias)
		g.append(`
    if (general_category == "@general_category@"sv)
        return GeneralCategory::@general_category@;`)
	}
	for _, alias := range db.GeneralCategoryAliases {
		g.set("general_category", alias.Alias)
		g.append(`
    if (general_category == "@general_category@"sv)
        return GeneralCategory::@general_category@;`)
	}

	g.append(`
    return {};
}

Optional<Script> script_from_string(StringView const& script)
{`)

	for _, name := range db.ScriptList.Names() {
		g.set("script", name)
		g.append(`
    if (script == "@script@"sv)
        return Script::@script@;`)
	}
	for _, alias := range db.ScriptAliases {
		g.set("script", alias.Alias)
		g.append(`
    if (script == "@script@"sv)
        return Script::@script@;`)
	}

	g.append(`
    return {};
}

}

}
`)

	return []byte(g.String())
}

// appendListAndSize emits an aggregate initializer for a fixed-size array
// field followed by the element count, rendering an empty list as "{}, 0".
func appendListAndSize(g *sourceGenerator, items []string) {
	if len(items) == 0 {
		g.append(", {}, 0")
		return
	}
	g.append(fmt.Sprintf(", { %v }, %v", strings.Join(items, ", "), len(items)))
}

func hexList(cps []rune) []string {
	items := make([]string, len(cps))
	for i, cp := range cps {
		items[i] = fmt.Sprintf("0x%x", cp)
	}
	return items
}

func casingPointerList(indices []int) []string {
	items := make([]string, len(indices))
	for i, index := range indices {
		items[i] = fmt.Sprintf("&s_special_casing[%v]", index)
	}
	return items
}

func scriptNameList(names []string) []string {
	items := make([]string, len(names))
	for i, name := range names {
		items[i] = fmt.Sprintf("Script::%v", name)
	}
	return items
}

// codePointOr substitutes the code point itself for an absent simple case
// mapping.
func codePointOr(mapping, cp rune) rune {
	if mapping == 0 {
		return cp
	}
	return mapping
}
