package setalgebra

// maxPasses bounds the fixed-point loop in Optimize, per spec.md §4.4.
const maxPasses = 5

// Optimize rewrites e into an equivalent, cheaper-to-evaluate form. It runs
// up to maxPasses of optimizePass, stopping early once a pass reaches a
// fixed point.
func Optimize(e *Expr) *Expr {
	cur := e
	for i := 0; i < maxPasses; i++ {
		next := optimizePass(cur)
		if Equal(next, cur) {
			return next
		}
		cur = next
	}
	return cur
}

// optimizePass applies normalization, the complement laws, the
// complement-to-subtraction rewrite, and a single ordered pattern-match step
// over the top node, per spec.md §4.4.
func optimizePass(e *Expr) *Expr {
	e = Normalize(e)
	e = applyComplementLaws(e)
	if rewritten, ok := complementToSubtraction(e); ok {
		e = rewritten
	}
	return applyPatternMatch(e)
}

// applyComplementLaws implements the three laws applied before pattern
// matching: Complement(Universe)=Empty, Complement(Empty)=Universe,
// Intersect/Union containing both x and Complement(x) collapse to
// Empty/Universe respectively.
func applyComplementLaws(e *Expr) *Expr {
	switch e.Kind {
	case KindComplement:
		switch e.Children[0].Kind {
		case KindUniverse:
			return Empty()
		case KindEmpty:
			return Universe()
		default:
			return e
		}
	case KindIntersect:
		for _, c := range e.Children {
			if c.Kind == KindComplement && containsExpr(e.Children, c.Children[0]) {
				return Empty()
			}
		}
		return e
	case KindUnion:
		for _, c := range e.Children {
			if c.Kind == KindComplement && containsExpr(e.Children, c.Children[0]) {
				return Universe()
			}
		}
		return e
	default:
		return e
	}
}

// complementToSubtraction rewrites an Intersect with a mix of complemented
// and non-complemented children into a Subtract, per spec.md §4.4. Intersect
// nodes where every child is complemented are left for the De Morgan rule
// in applyPatternMatch instead (see the "Open question" in spec.md §9: the
// split between these two rules is deliberate and not generalized).
func complementToSubtraction(e *Expr) (*Expr, bool) {
	if e.Kind != KindIntersect {
		return nil, false
	}
	var nonComplemented, complementedInner []*Expr
	for _, c := range e.Children {
		if c.Kind == KindComplement {
			complementedInner = append(complementedInner, c.Children[0])
		} else {
			nonComplemented = append(nonComplemented, c)
		}
	}
	if len(complementedInner) == 0 || len(nonComplemented) == 0 {
		return nil, false
	}
	var minuend *Expr
	if len(nonComplemented) == 1 {
		minuend = nonComplemented[0]
	} else {
		minuend = Intersect(nonComplemented...)
	}
	return Subtract(minuend, complementedInner...), true
}

// applyPatternMatch applies the ordered rewrite table from spec.md §4.4 to
// the (already normalized/complement-law-applied) top node.
func applyPatternMatch(e *Expr) *Expr {
	switch e.Kind {
	case KindComplement:
		child := e.Children[0]
		if child.Kind == KindComplement {
			return optimizePass(child.Children[0])
		}
		return Complement(optimizePass(child))

	case KindUnion:
		if len(e.Children) == 1 {
			return optimizePass(e.Children[0])
		}
		if flat := flattenChildren(e.Children, KindUnion); flat != nil {
			return optimizePass(Union(flat...))
		}
		if hasKind(e.Children, KindEmpty) {
			return optimizePass(Union(removeKind(e.Children, KindEmpty)...))
		}
		if hasKind(e.Children, KindUniverse) {
			return Universe()
		}
		if len(e.Children) == 2 {
			if x, ok := absorb(e.Children[0], e.Children[1], KindIntersect); ok {
				return x
			}
			if x, ok := absorb(e.Children[1], e.Children[0], KindIntersect); ok {
				return x
			}
		}
		if allComplement(e.Children) {
			return Complement(Intersect(innerOf(e.Children)...))
		}
		return e

	case KindIntersect:
		if len(e.Children) == 1 {
			return optimizePass(e.Children[0])
		}
		if flat := flattenChildren(e.Children, KindIntersect); flat != nil {
			return optimizePass(Intersect(flat...))
		}
		if hasKind(e.Children, KindUniverse) {
			return optimizePass(Intersect(removeKind(e.Children, KindUniverse)...))
		}
		if hasKind(e.Children, KindEmpty) {
			return Empty()
		}
		if len(e.Children) == 2 {
			if x, ok := absorb(e.Children[0], e.Children[1], KindUnion); ok {
				return x
			}
			if x, ok := absorb(e.Children[1], e.Children[0], KindUnion); ok {
				return x
			}
		}
		if allComplement(e.Children) {
			return Complement(Union(innerOf(e.Children)...))
		}
		return e

	case KindSubtract:
		return optimizeSubtract(e.Children[0], e.Children[1:])

	default:
		return e
	}
}

// flattenChildren merges any child of kind targetKind into its parent's
// child list, replacing it with its own children. Returns nil if no child
// of that kind is present (meaning: no change).
func flattenChildren(children []*Expr, targetKind Kind) []*Expr {
	changed := false
	out := make([]*Expr, 0, len(children))
	for _, c := range children {
		if c.Kind == targetKind {
			out = append(out, c.Children...)
			changed = true
		} else {
			out = append(out, c)
		}
	}
	if !changed {
		return nil
	}
	return out
}

// absorb implements the 2-child absorption rule: if a has kind wantKind and
// b appears among a's children, the whole expression collapses to b.
func absorb(a, b *Expr, wantKind Kind) (*Expr, bool) {
	if a.Kind != wantKind {
		return nil, false
	}
	if containsExpr(a.Children, b) {
		return b, true
	}
	return nil, false
}

// optimizeSubtract implements spec.md §4.4's subtraction rules.
func optimizeSubtract(minuend *Expr, subtrahends []*Expr) *Expr {
	filtered := make([]*Expr, 0, len(subtrahends))
	for _, s := range subtrahends {
		if s.Kind != KindEmpty {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return minuend
	}
	if minuend.Kind == KindEmpty {
		return Empty()
	}
	if minuend.Kind == KindIntersect {
		for _, mc := range minuend.Children {
			if containsExpr(filtered, mc) {
				return Empty()
			}
		}
	}
	if containsExpr(filtered, minuend) || hasKind(filtered, KindUniverse) {
		return Empty()
	}

	flattened := flattenSubtrahendUnions(filtered)
	flattened = dedupAndSort(flattened)

	optimizedMinuend := optimizePass(minuend)
	optimizedSubtrahends := make([]*Expr, len(flattened))
	for i, s := range flattened {
		optimizedSubtrahends[i] = optimizePass(s)
	}
	return Subtract(optimizedMinuend, optimizedSubtrahends...)
}

func flattenSubtrahendUnions(subtrahends []*Expr) []*Expr {
	out := make([]*Expr, 0, len(subtrahends))
	for _, s := range subtrahends {
		if s.Kind == KindUnion {
			out = append(out, s.Children...)
		} else {
			out = append(out, s)
		}
	}
	return out
}
