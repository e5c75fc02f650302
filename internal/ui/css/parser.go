// Package css reads the small CSS subset the HUD is styled with: .class and
// #id selectors with "key: value;" declarations. Tokenizing is done by
// tdewolff/parse; rules with any other selector are skipped.
package css

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Rule is a single CSS rule: one selector and its raw property values.
type Rule struct {
	Selector string            // ".panel" or "#intro"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is a list of rules. Later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Parse parses content into a stylesheet. A block left open at the end of the
// input is dropped. On a lexer error the rules read so far are returned with
// the error.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var current *Rule
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == io.EOF {
				return sheet, nil
			}
			if err != nil {
				return sheet, fmt.Errorf("parse stylesheet: %w", err)
			}
		case css.BeginRulesetGrammar:
			selector := joinValues(p.Values())
			current = nil
			if validSelector(selector) {
				current = &Rule{Selector: selector, Props: make(map[string]string)}
			}
		case css.DeclarationGrammar:
			if current != nil {
				current.Props[string(data)] = joinValues(p.Values())
			}
		case css.EndRulesetGrammar:
			if current != nil {
				sheet.Rules = append(sheet.Rules, *current)
			}
			current = nil
		}
	}
}

func joinValues(tokens []css.Token) string {
	var b bytes.Buffer
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return string(bytes.TrimSpace(b.Bytes()))
}

// validSelector accepts a single simple .class or #id selector.
func validSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " \t\n>+~,.#:[")
}

// Match merges the properties of every rule whose selector is .class or #id.
// Rules apply in order, so the last one wins.
func (s *Stylesheet) Match(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		sel := rule.Selector
		hit := (sel[0] == '.' && class != "" && sel[1:] == class) ||
			(sel[0] == '#' && id != "" && sel[1:] == id)
		if !hit {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}
