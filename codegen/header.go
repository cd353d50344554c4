package codegen

import (
	"fmt"
	"sort"

	"github.com/nihei9/ucdgen/ucd"
)

// desiredFields lists the optional CodePointData fields the generated
// UnicodeData struct carries. Everything else that UnicodeData.txt defines is
// parsed but not emitted, which keeps the table small; code_point, the special
// casing pointers, the property bitmask, the scripts, and the word break
// property are always included.
var desiredFields = []string{
	"name",
	"general_category",
	"simple_uppercase_mapping",
	"simple_lowercase_mapping",
}

func isDesiredField(name string) bool {
	for _, f := range desiredFields {
		if f == name {
			return true
		}
	}
	return false
}

// GenHeader generates the declaration artifact: the discovered enums, the
// record layouts sized to the discovered maxima, and the lookup forward
// declarations.
func GenHeader(db *ucd.UCD) []byte {
	g := newSourceGenerator()
	g.set("casing_transform_size", fmt.Sprintf("%v", db.LargestCasingTransformSize))
	g.set("special_casing_size", fmt.Sprintf("%v", db.LargestSpecialCasingSize))
	g.set("script_extensions_size", fmt.Sprintf("%v", db.LargestScriptExtensionsSize))

	g.append(`
#pragma once

#include <AK/Optional.h>
#include <AK/Types.h>
#include <LibUnicode/Forward.h>

namespace Unicode {
`)

	genEnum(g, "Locale", "None", db.Locales, nil, nil, false)
	genEnum(g, "Condition", "None", db.Conditions, nil, nil, false)
	genEnum(g, "GeneralCategory", "None", db.GeneralCategories, db.GeneralCategoryUnions, db.GeneralCategoryAliases, true)
	genEnum(g, "Property", "Assigned", db.PropList.Names(), nil, db.PropAliases, true)
	genEnum(g, "Script", "", db.ScriptList.Names(), nil, db.ScriptAliases, false)
	genEnum(g, "WordBreakProperty", "Other", db.WordBreakPropList.Names(), nil, nil, false)

	g.append(`
struct SpecialCasing {
    u32 code_point { 0 };

    u32 lowercase_mapping[@casing_transform_size@];
    u32 lowercase_mapping_size { 0 };

    u32 uppercase_mapping[@casing_transform_size@];
    u32 uppercase_mapping_size { 0 };

    u32 titlecase_mapping[@casing_transform_size@];
    u32 titlecase_mapping_size { 0 };

    Locale locale { Locale::None };
    Condition condition { Condition::None };
};

struct UnicodeData {
    u32 code_point;`)

	appendField := func(typ, name string) {
		if !isDesiredField(name) {
			return
		}
		g.set("type", typ)
		g.set("name", name)
		g.append(`
    @type@ @name@;`)
	}

	// Only primitive and pointer types appear in the struct so that the
	// generated table can be a statically initialized constant.
	appendField("char const*", "name")
	appendField("GeneralCategory", "general_category")
	appendField("u8", "canonical_combining_class")
	appendField("char const*", "bidi_class")
	appendField("char const*", "decomposition_type")
	appendField("i8", "numeric_value_decimal")
	appendField("i8", "numeric_value_digit")
	appendField("i8", "numeric_value_numeric")
	appendField("bool", "bidi_mirrored")
	appendField("char const*", "unicode_1_name")
	appendField("char const*", "iso_comment")
	appendField("u32", "simple_uppercase_mapping")
	appendField("u32", "simple_lowercase_mapping")
	appendField("u32", "simple_titlecase_mapping")

	g.append(`

    SpecialCasing const* special_casing[@special_casing_size@] {};
    u32 special_casing_size { 0 };

    Property properties { Property::Assigned };

    Script script { Script::Unknown };
    Script script_extensions[@script_extensions_size@];
    u32 script_extensions_size { 0 };

    WordBreakProperty word_break_property { WordBreakProperty::Other };
};

namespace Detail {

Optional<UnicodeData> unicode_data_for_code_point(u32 code_point);
Optional<Property> property_from_string(StringView const& property);
Optional<GeneralCategory> general_category_from_string(StringView const& general_category);
Optional<Script> script_from_string(StringView const& script);

}

}
`)

	return []byte(g.String())
}

// genEnum generates one enum declaration. Members are sorted for determinism.
// Union and alias members are emitted in their own blocks after the canonical
// members so that every alias follows the member it refers to, regardless of
// how the two sort against each other. In bitmask mode the members are
// numbered 1 << n over a 64-bit underlying type, and & and | operators are
// emitted alongside the enum.
func genEnum(g *sourceGenerator, name, defaultValue string, values []string, unions, aliases []*ucd.Alias, asBitmask bool) {
	if asBitmask && len(values) > 64 {
		panic(fmt.Sprintf("codegen: a bitmask enum holds at most 64 members, but %v has %v", name, len(values)))
	}

	values = append([]string{}, values...)
	sort.Strings(values)
	unions = sortAliases(unions)
	aliases = sortAliases(aliases)

	g.set("name", name)
	g.set("underlying", fmt.Sprintf("%vUnderlyingType", name))

	if asBitmask {
		g.append(`
using @underlying@ = u64;

enum class @name@ : @underlying@ {`)
	} else {
		g.append(`
enum class @name@ {`)
	}

	if defaultValue != "" {
		g.set("default", defaultValue)
		g.append(`
    @default@,`)
	}

	for i, value := range values {
		g.set("value", value)
		if asBitmask {
			g.set("index", fmt.Sprintf("%v", i))
			g.append(`
    @value@ = static_cast<@underlying@>(1) << @index@,`)
		} else {
			g.append(`
    @value@,`)
		}
	}

	for _, union := range unions {
		g.set("union", union.Alias)
		g.set("value", union.Property)
		g.append(`
    @union@ = @value@,`)
	}
	for _, alias := range aliases {
		g.set("alias", alias.Alias)
		g.set("value", alias.Property)
		g.append(`
    @alias@ = @value@,`)
	}

	g.append(`
};
`)

	if asBitmask {
		g.append(`
constexpr @name@ operator&(@name@ value1, @name@ value2)
{
    return static_cast<@name@>(static_cast<@underlying@>(value1) & static_cast<@underlying@>(value2));
}

constexpr @name@ operator|(@name@ value1, @name@ value2)
{
    return static_cast<@name@>(static_cast<@underlying@>(value1) | static_cast<@underlying@>(value2));
}
`)
	}
}

func sortAliases(aliases []*ucd.Alias) []*ucd.Alias {
	sorted := append([]*ucd.Alias{}, aliases...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Alias < sorted[j].Alias
	})
	return sorted
}
