package fragments

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Spreads returns the names of all named fragment spreads in a selection set,
// including those nested in fields and inline fragments, in document order.
func Spreads(set ast.SelectionSet) []string {
	names := []string{}

	var walk func(ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, sel := range set {
			switch s := sel.(type) {
			case *ast.FragmentSpread:
				names = append(names, s.Name)
			case *ast.InlineFragment:
				walk(s.SelectionSet)
			case *ast.Field:
				walk(s.SelectionSet)
			}
		}
	}

	walk(set)

	return names
}

// DocumentSpreads returns the spreads used by every operation and fragment
// definition in doc.
func DocumentSpreads(doc *ast.QueryDocument) []string {
	names := []string{}

	for _, op := range doc.Operations {
		names = append(names, Spreads(op.SelectionSet)...)
	}

	for _, f := range doc.Fragments {
		names = append(names, Spreads(f.SelectionSet)...)
	}

	return names
}
