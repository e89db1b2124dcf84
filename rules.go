package main

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// slider is the step count used for unlimited-range moves; rays stop at the
// board edge long before it runs out.
const slider = 10

// Modifier selects between depictions sharing one square. Bit value 1 is
// the legacy "negative y" flag, bit value 2 the "negative x" flag.
type Modifier uint8

const maxModifier Modifier = 3

var allModifiers = []Modifier{0, 1, 2, 3}

// DecodeSigned converts the sign-encoded coordinates of the old rule pages
// into a square and modifier.
func DecodeSigned(x, y int) (Square, Modifier) {
	var m Modifier
	if y < 0 {
		y = -y
		m = 1
	}
	if x < 0 {
		x = -x
		m += 2
	}
	return Square{X: x, Y: y}, m
}

// Rule is what pressing one square shows.
type Rule struct {
	Title   string   `json:"title"`
	Caption []string `json:"caption,omitempty"`
	// From overrides the square the directives are cast from.
	From       *Square     `json:"from,omitempty"`
	Directives []Directive `json:"directives"`
}

// Description is the text shown in the description pane.
func (r *Rule) Description() Description {
	return Description{Title: r.Title, Caption: r.Caption}
}

// RuleKey identifies one table entry.
type RuleKey struct {
	Square   Square   `json:"square"`
	Modifier Modifier `json:"modifier"`
}

// Table maps pressed squares to rules for one variant page.
type Table struct {
	Name string
	// CellPrefix is prepended to "{x}x{y}" to form cell ids.
	CellPrefix string
	Caster     Caster
	rules      map[RuleKey]*Rule
}

func newTable(name, prefix string, c Caster) *Table {
	return &Table{
		Name:       name,
		CellPrefix: prefix,
		Caster:     c,
		rules:      make(map[RuleKey]*Rule),
	}
}

func (t *Table) add(sq Square, mods []Modifier, r *Rule) error {
	if len(r.Directives) == 0 {
		return fmt.Errorf("%s %v: %w: rule %q has no directives", t.Name, sq, ErrInvalidDirective, r.Title)
	}
	for _, d := range r.Directives {
		if err := d.validate(); err != nil {
			return fmt.Errorf("%s %v %q: %w", t.Name, sq, r.Title, err)
		}
	}
	for _, m := range mods {
		if m > maxModifier {
			return fmt.Errorf("%s %v: modifier %d out of range", t.Name, sq, m)
		}
		k := RuleKey{Square: sq, Modifier: m}
		if prev, ok := t.rules[k]; ok {
			return fmt.Errorf("%w: %s %v mod %d (%q and %q)", ErrDuplicateRule, t.Name, sq, m, prev.Title, r.Title)
		}
		t.rules[k] = r
	}
	return nil
}

// Resolve returns the rule for a press. No rule is a legal outcome.
func (t *Table) Resolve(sq Square, mod Modifier) (*Rule, bool) {
	r, ok := t.rules[RuleKey{Square: sq, Modifier: mod}]
	return r, ok
}

// Keys lists every entry, ordered by square then modifier.
func (t *Table) Keys() []RuleKey {
	keys := make([]RuleKey, 0, len(t.rules))
	for k := range t.rules {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b RuleKey) int {
		return cmp.Or(
			cmp.Compare(a.Square.Y, b.Square.Y),
			cmp.Compare(a.Square.X, b.Square.X),
			cmp.Compare(a.Modifier, b.Modifier),
		)
	})
	return keys
}

// Effects casts every directive of r for a press on sq, in rule order.
func (t *Table) Effects(b *Board, sq Square, r *Rule) []Effect {
	from := sq
	if r.From != nil {
		from = *r.From
	}
	var out []Effect
	for _, d := range r.Directives {
		out = append(out, t.Caster.Cast(b, from, d)...)
	}
	return out
}

// tableBuilder keeps the variant transcriptions terse.
type tableBuilder struct {
	t   *Table
	err error
}

func build(name, prefix string, c Caster) *tableBuilder {
	return &tableBuilder{t: newTable(name, prefix, c)}
}

// piece registers a rule under every modifier.
func (b *tableBuilder) piece(x, y int, title string, caption []string, dirs ...[]Directive) {
	b.when(x, y, allModifiers, title, caption, dirs...)
}

func (b *tableBuilder) when(x, y int, mods []Modifier, title string, caption []string, dirs ...[]Directive) {
	b.rule(x, y, mods, &Rule{Title: title, Caption: caption, Directives: join(dirs...)})
}

func (b *tableBuilder) rule(x, y int, mods []Modifier, r *Rule) {
	if b.err != nil {
		return
	}
	b.err = b.t.add(Square{X: x, Y: y}, mods, r)
}

func (b *tableBuilder) mustBuild() *Table {
	if b.err != nil {
		panic(b.err)
	}
	return b.t
}

func mods(m ...Modifier) []Modifier { return m }

func lines(l ...string) []string { return l }

func seq(d ...Directive) []Directive { return d }

var variants = map[string]*Table{}

func registerVariant(t *Table) {
	if _, ok := variants[t.Name]; ok {
		panic(fmt.Sprintf("variant %q registered twice", t.Name))
	}
	variants[t.Name] = t
}

// LookupVariant returns the rule table of a variant page.
func LookupVariant(name string) (*Table, error) {
	t, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return t, nil
}

// VariantNames lists the registered variants in name order.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for n := range variants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
