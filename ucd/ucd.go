package ucd

const (
	// https://www.unicode.org/versions/Unicode13.0.0/ch03.pdf
	// 3.4  Characters and Encoding
	// > D9 Unicode codespace: A range of integers from 0 to 10FFFF16.
	codePointMin = 0x0
	codePointMax = 0x10FFFF
)

// Alias represents an alternative spelling of a property value. Property is
// the canonical spelling and Alias refers to it.
type Alias struct {
	Property string
	Alias    string
}

// PropList maps property names to the code point ranges the property applies
// to. Unlike a plain map, it iterates in insertion order, which keeps the
// first-match scan of the joiner and the emitted output reproducible across
// runs over identical inputs.
type PropList struct {
	names  []string
	ranges map[string][]*CodePointRange
}

func newPropList() *PropList {
	return &PropList{
		ranges: map[string][]*CodePointRange{},
	}
}

func (l *PropList) ensure(name string) {
	if _, ok := l.ranges[name]; !ok {
		l.names = append(l.names, name)
		l.ranges[name] = nil
	}
}

func (l *PropList) add(name string, cp *CodePointRange) {
	l.ensure(name)
	l.ranges[name] = append(l.ranges[name], cp)
}

func (l *PropList) contains(name string) bool {
	_, ok := l.ranges[name]
	return ok
}

// Names returns all property names in insertion order.
func (l *PropList) Names() []string {
	return l.names
}

// Ranges returns the code point ranges a property applies to.
func (l *PropList) Ranges(name string) []*CodePointRange {
	return l.ranges[name]
}

// UCD is the aggregate model built from the UCD data files. It is populated
// by the Parse* functions in a fixed order (see cmd/ucdgen) and read by the
// codegen package afterwards.
type UCD struct {
	SpecialCasing              []*SpecialCasing
	LargestCasingTransformSize int
	LargestSpecialCasingSize   int
	Locales                    []string
	Conditions                 []string

	CodePointData   []*CodePointData
	CodePointRanges []*CodePointRange

	// The Unicode standard defines General Category values which are not in
	// any UCD file. These values are simply unions of other values.
	// https://www.unicode.org/reports/tr44/#GC_Values_Table
	GeneralCategories      []string
	GeneralCategoryUnions  []*Alias
	GeneralCategoryAliases []*Alias

	PropList    *PropList
	PropAliases []*Alias

	ScriptList    *PropList
	ScriptAliases []*Alias

	ScriptExtensions            *PropList
	LargestScriptExtensionsSize int

	WordBreakPropList *PropList
}

// NewUCD returns an aggregate seeded with the values the UCD files never
// spell out.
func NewUCD() *UCD {
	// The Unicode standard defines additional properties (Any, Assigned, ASCII)
	// which are not in any UCD file. Assigned is the enum default value 0 so
	// "property & Assigned == Assigned" is always true. Any gets no code
	// points here because only assigned code points are parsed, whereas Any
	// also covers unassigned ones.
	// https://unicode.org/reports/tr18/#General_Category_Property
	propList := newPropList()
	propList.ensure("Any")
	propList.add("ASCII", &CodePointRange{From: 0x0, To: 0x7f})

	scriptList := newPropList()
	scriptList.ensure("Unknown")

	return &UCD{
		GeneralCategoryUnions: []*Alias{
			{Property: "Ll | Lu | Lt", Alias: "LC"},
			{Property: "Lu | Ll | Lt | Lm | Lo", Alias: "L"},
			{Property: "Mn | Mc | Me", Alias: "M"},
			{Property: "Nd | Nl | No", Alias: "N"},
			{Property: "Pc | Pd | Ps | Pe | Pi | Pf | Po", Alias: "P"},
			{Property: "Sm | Sc | Sk | So", Alias: "S"},
			{Property: "Zs | Zl | Zp", Alias: "Z"},
			// The C union leaves out Cn (Unassigned) because unassigned code
			// points are not parsed.
			{Property: "Cc | Cf | Cs | Co", Alias: "C"},
		},
		PropList:          propList,
		ScriptList:        scriptList,
		ScriptExtensions:  newPropList(),
		WordBreakPropList: newPropList(),
	}
}

func containsString(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
