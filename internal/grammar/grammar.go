// Package grammar holds the fixed context-free grammar consulted by the
// parser's reduce actions. The rule list is hard-coded, in the same order
// and numbering as the reference analyser, because the SLR tables in
// internal/slrtable were computed against this exact numbering.
package grammar

import "strings"

// Symbol is a single grammar symbol. Terminality is derived from casing:
// a symbol whose text is entirely lowercase is a terminal (and, for
// reserved words and structural classes, its text doubles as the
// lexis.Class / Action-table column name); anything else is a
// non-terminal. This convention is load-bearing — do not rename a
// non-terminal to an all-lowercase spelling without also relabeling every
// rule that references it.
type Symbol struct {
	Text     string
	Terminal bool
}

func newSymbol(text string) Symbol {
	return Symbol{Text: text, Terminal: strings.ToLower(text) == text}
}

// Rule is a single production: Left -> Right[0] Right[1] ... Right[n-1].
type Rule struct {
	Left  Symbol
	Right []Symbol
}

// String renders a rule as "LEFT -> r1 r2 r3", used in reduction traces.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.Left.Text)
	sb.WriteString(" -> ")
	for i, sym := range r.Right {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(sym.Text)
	}
	return sb.String()
}

// Grammar is the ordered, fixed rule list. The zero value is not usable;
// call New.
type Grammar struct {
	rules []Rule
}

// Rule returns the rule at index, which must be a valid rule number
// (0..Len()-1) as used by the Action table's reduce entries.
func (g *Grammar) Rule(index int) Rule {
	return g.rules[index]
}

// Len returns the number of rules, including the augmented start rule.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// Rules returns every rule in definition order, for tracing/diagnostics.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

func (g *Grammar) add(left string, right string) {
	rule := Rule{Left: newSymbol(left)}
	for _, text := range strings.Fields(right) {
		rule.Right = append(rule.Right, newSymbol(text))
	}
	g.rules = append(g.rules, rule)
}

// New builds the grammar. Rule 0 is always the augmented start P' -> P.
//
// The right-recursive shape of A's four alternatives (rules 11, 17, 23,
// 31) is intentional: it mirrors the SLR tables in internal/slrtable,
// which were generated against this exact grammar. Rewriting it to left
// recursion would require regenerating those tables.
func New() *Grammar {
	g := &Grammar{}

	g.add("P'", "P")
	g.add("P", "inicio V A")
	g.add("V", "varinicio LV")
	g.add("LV", "D LV")
	g.add("LV", "varfim pt_v")
	g.add("D", "TIPO L pt_v")
	g.add("L", "id vir L")
	g.add("L", "id")
	g.add("TIPO", "inteiro")
	g.add("TIPO", "real")
	g.add("TIPO", "literal")
	g.add("A", "ES A")
	g.add("ES", "leia id pt_v")
	g.add("ES", "escreva ARG pt_v")
	g.add("ARG", "lit")
	g.add("ARG", "num")
	g.add("ARG", "id")
	g.add("A", "CMD A")
	g.add("CMD", "id rcb LD pt_v")
	g.add("LD", "OPRD opm OPRD")
	g.add("LD", "OPRD")
	g.add("OPRD", "id")
	g.add("OPRD", "num")
	g.add("A", "COND A")
	g.add("COND", "CAB CP")
	g.add("CAB", "se ab_p EXP_R fc_p entao")
	g.add("EXP_R", "OPRD opr OPRD")
	g.add("CP", "ES CP")
	g.add("CP", "CMD CP")
	g.add("CP", "COND CP")
	g.add("CP", "fimse")
	g.add("A", "R A")
	g.add("R", "CABR CPR")
	g.add("CABR", "repita ab_p EXP_R fc_p")
	g.add("CPR", "ES CPR")
	g.add("CPR", "CMD CPR")
	g.add("CPR", "COND CPR")
	g.add("CPR", "fimrepita")
	g.add("A", "fim")

	return g
}
