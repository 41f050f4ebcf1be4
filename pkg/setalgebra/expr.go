// Package setalgebra implements the set-expression AST, its normalize and
// optimize passes, and an evaluator that folds an optimized expression
// against any bitset-capable type, per spec.md §4.3–4.5.
package setalgebra

import (
	"fmt"

	"github.com/xflash-panda/hangman-engine/pkg/term"
)

// Kind tags the shape of an Expr node.
type Kind uint8

const (
	// KindEmpty is the empty-set sentinel.
	KindEmpty Kind = iota
	// KindUniverse is the universal-set sentinel.
	KindUniverse
	// KindLeaf is an opaque leaf: an atom (test fixtures), a term
	// reference resolved by the index, or an embedded bitset.
	KindLeaf
	// KindIntersect is an n-ary, commutative, associative intersection.
	KindIntersect
	// KindUnion is an n-ary, commutative, associative union.
	KindUnion
	// KindSubtract is minuend minus zero or more subtrahends.
	KindSubtract
	// KindComplement is a unary involution.
	KindComplement
)

// Expr is a node in a set expression. The zero value is not meaningful;
// build expressions with the constructors below.
type Expr struct {
	Kind     Kind
	Key      string // leaf identity, used for equality/dedup/sort ties
	Payload  any    // leaf payload: term.Term, BitsetLike, or nil (bare atom)
	Children []*Expr
}

// Empty returns the empty-set sentinel.
func Empty() *Expr { return &Expr{Kind: KindEmpty} }

// Universe returns the universal-set sentinel.
func Universe() *Expr { return &Expr{Kind: KindUniverse} }

// Atom returns a bare named leaf, unresolvable by Evaluate, used to express
// the optimizer scenarios from spec.md §8 (":a", ":b", ...) independent of
// any concrete bitset.
func Atom(name string) *Expr {
	return &Expr{Kind: KindLeaf, Key: "atom:" + name}
}

// TermLeaf returns a leaf that Evaluate resolves against an index.
func TermLeaf(t term.Term) *Expr {
	return &Expr{Kind: KindLeaf, Key: "term:" + t.String(), Payload: t}
}

// BitsetLeaf returns a leaf that directly embeds a concrete bitset-capable
// value. key must be unique per distinct value so normalize's dedup and
// sort behave correctly.
func BitsetLeaf(key string, b BitsetLike) *Expr {
	return &Expr{Kind: KindLeaf, Key: key, Payload: b}
}

// Intersect returns an n-ary intersection of children (n >= 1).
func Intersect(children ...*Expr) *Expr {
	requireNonEmpty("Intersect", children)
	return &Expr{Kind: KindIntersect, Children: children}
}

// Union returns an n-ary union of children (n >= 1).
func Union(children ...*Expr) *Expr {
	requireNonEmpty("Union", children)
	return &Expr{Kind: KindUnion, Children: children}
}

// Subtract returns minuend minus subtrahends (n >= 0 subtrahends).
func Subtract(minuend *Expr, subtrahends ...*Expr) *Expr {
	return &Expr{Kind: KindSubtract, Children: append([]*Expr{minuend}, subtrahends...)}
}

// Complement returns the set complement of child.
func Complement(child *Expr) *Expr {
	return &Expr{Kind: KindComplement, Children: []*Expr{child}}
}

func requireNonEmpty(op string, children []*Expr) {
	if len(children) == 0 {
		panic(fmt.Sprintf("setalgebra: %s requires at least one child", op))
	}
}

// Equal reports deep structural equality between two expressions.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindEmpty, KindUniverse:
		return true
	case KindLeaf:
		return a.Key == b.Key
	case KindComplement:
		return Equal(a.Children[0], b.Children[0])
	case KindIntersect, KindUnion, KindSubtract:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func rank(e *Expr) int {
	switch e.Kind {
	case KindEmpty:
		return 0
	case KindUniverse:
		return 1
	case KindIntersect:
		return 10
	case KindUnion:
		return 11
	case KindSubtract:
		return 12
	case KindComplement:
		return 13
	default:
		return 100
	}
}

func containsExpr(list []*Expr, target *Expr) bool {
	for _, e := range list {
		if Equal(e, target) {
			return true
		}
	}
	return false
}

func hasKind(list []*Expr, k Kind) bool {
	for _, e := range list {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func removeKind(list []*Expr, k Kind) []*Expr {
	out := make([]*Expr, 0, len(list))
	for _, e := range list {
		if e.Kind != k {
			out = append(out, e)
		}
	}
	return out
}

func allComplement(list []*Expr) bool {
	for _, e := range list {
		if e.Kind != KindComplement {
			return false
		}
	}
	return true
}

func innerOf(complements []*Expr) []*Expr {
	out := make([]*Expr, len(complements))
	for i, c := range complements {
		out[i] = c.Children[0]
	}
	return out
}
