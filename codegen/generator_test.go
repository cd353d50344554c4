package codegen

import (
	"testing"
)

func TestSourceGenerator(t *testing.T) {
	g := newSourceGenerator()
	g.set("name", "Locale")
	g.append(`
enum class @name@ {`)
	g.set("value", "None")
	g.append(`
    @value@,`)
	// Bindings persist across appends until overwritten.
	g.set("value", "TR")
	g.append(`
    @value@,`)
	g.append(`
};
`)

	want := `
enum class Locale {
    None,
    TR,
};
`
	if g.String() != want {
		t.Fatalf("unexpected output:\nwant:\n%v\ngot:\n%v", want, g.String())
	}
}

func TestSourceGenerator_literalText(t *testing.T) {
	g := newSourceGenerator()
	g.append("return {};")
	if g.String() != "return {};" {
		t.Fatalf("unexpected output: %v", g.String())
	}
}

func TestSourceGenerator_unboundPlaceholder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("a panic is expected")
		}
	}()
	newSourceGenerator().append("@unbound@")
}
