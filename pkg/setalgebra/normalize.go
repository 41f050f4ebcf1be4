package setalgebra

import "sort"

// Normalize canonicalizes a single node: children of Intersect/Union are
// deduplicated and stable-sorted by rank; Subtract preserves its minuend and
// dedups/sorts its subtrahends; Complement and leaves are returned as-is.
// It does not recurse into children — see optimizePass for how recursion
// into subexpressions happens through specific rewrite rules.
func Normalize(e *Expr) *Expr {
	switch e.Kind {
	case KindIntersect:
		return &Expr{Kind: KindIntersect, Children: dedupAndSort(e.Children)}
	case KindUnion:
		return &Expr{Kind: KindUnion, Children: dedupAndSort(e.Children)}
	case KindSubtract:
		minuend := e.Children[0]
		subtrahends := dedupAndSort(e.Children[1:])
		return &Expr{Kind: KindSubtract, Children: append([]*Expr{minuend}, subtrahends...)}
	default:
		return e
	}
}

// dedupAndSort removes structurally-equal duplicates (keeping the first
// occurrence) and stable-sorts the remainder by rank. A stable sort means
// elements of equal rank keep their relative (deduplicated) order, which is
// the "natural leaf ordering" spec.md §4.3 permits.
func dedupAndSort(children []*Expr) []*Expr {
	deduped := make([]*Expr, 0, len(children))
	for _, c := range children {
		if !containsExpr(deduped, c) {
			deduped = append(deduped, c)
		}
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		return rank(deduped[i]) < rank(deduped[j])
	})
	return deduped
}
