package codegen

import (
	"fmt"
	"regexp"
	"strings"
)

var rePlaceholder = regexp.MustCompile(`@[0-9A-Za-z_]+@`)

// A sourceGenerator accumulates output text block by block, substituting
// @name@ placeholders from its current bindings. Bindings persist across
// appends until overwritten; there is no scope nesting.
type sourceGenerator struct {
	b        strings.Builder
	bindings map[string]string
}

func newSourceGenerator() *sourceGenerator {
	return &sourceGenerator{
		bindings: map[string]string{},
	}
}

func (g *sourceGenerator) set(name, value string) {
	g.bindings[name] = value
}

func (g *sourceGenerator) append(block string) {
	g.b.WriteString(rePlaceholder.ReplaceAllStringFunc(block, func(m string) string {
		name := m[1 : len(m)-1]
		value, ok := g.bindings[name]
		if !ok {
			// An unbound placeholder is a bug in the emitter, not in the input.
			panic(fmt.Sprintf("codegen: placeholder @%v@ is not bound", name))
		}
		return value
	}))
}

func (g *sourceGenerator) String() string {
	return g.b.String()
}
