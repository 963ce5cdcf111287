package ui

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a stylesheet. Only rules whose selector is a single .class or #id are kept;
// at-rules and other selectors are skipped. A selector list ".a, .b" yields one rule per entry.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var selectors []string
	var props map[string]string
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return nil, err
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.QualifiedRuleGrammar:
			if atDepth == 0 {
				selectors = append(selectors, joinTokens(p.Values()))
			}
		case css.BeginRulesetGrammar:
			if atDepth == 0 {
				selectors = append(selectors, joinTokens(p.Values()))
				props = make(map[string]string)
			}
		case css.DeclarationGrammar:
			if props != nil {
				props[strings.ToLower(string(data))] = joinTokens(p.Values())
			}
		case css.EndRulesetGrammar:
			for _, sel := range selectors {
				if validSelector(sel) {
					sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: copyProps(props)})
				}
			}
			selectors, props = nil, nil
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

func validSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " .#:>,[")
}

func copyProps(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
