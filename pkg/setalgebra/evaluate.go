package setalgebra

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator is returned when Evaluate encounters a node Optimize
// should have eliminated, per spec.md §4.5: a bare Complement that survived
// optimization (no worked scenario in spec.md §8 hits this path, since every
// Complement in those scenarios reduces to a Subtract during Optimize).
var ErrUnknownOperator = errors.New("setalgebra: unknown operator for evaluation")

var errIncompatibleBitsetLike = errors.New("setalgebra: incompatible BitsetLike implementations")

// Config supplies Evaluate with the universe and the means to resolve a
// term.Term leaf (via Resolve) into a concrete BitsetLike value.
type Config struct {
	// Universe is returned for KindUniverse nodes and is the capacity every
	// leaf value is expected to share.
	Universe BitsetLike
	// Resolve looks up the BitsetLike value for a leaf's payload. It is
	// called with whatever was stored in Expr.Payload: a term.Term for
	// TermLeaf nodes, or the BitsetLike itself for BitsetLeaf nodes (in
	// which case Resolve may simply return it unchanged).
	Resolve func(payload any) (BitsetLike, error)
}

// Evaluate optimizes e and folds it into a single BitsetLike value against
// cfg, per spec.md §4.5.
func Evaluate(e *Expr, cfg Config) (BitsetLike, error) {
	return evalNode(Optimize(e), cfg)
}

func evalNode(e *Expr, cfg Config) (BitsetLike, error) {
	switch e.Kind {
	case KindEmpty:
		empty, err := cfg.Universe.AndNot(cfg.Universe)
		if err != nil {
			return nil, fmt.Errorf("setalgebra: evaluate: empty: %w", err)
		}
		return empty, nil

	case KindUniverse:
		return cfg.Universe, nil

	case KindLeaf:
		if e.Payload == nil {
			return nil, fmt.Errorf("setalgebra: evaluate: %w: unresolvable atom leaf %q", ErrUnknownOperator, e.Key)
		}
		resolved, err := cfg.Resolve(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("setalgebra: evaluate: resolve %q: %w", e.Key, err)
		}
		return resolved, nil

	case KindIntersect:
		return foldNode(e.Children, cfg, BitsetLike.And)

	case KindUnion:
		return foldNode(e.Children, cfg, BitsetLike.Or)

	case KindSubtract:
		minuend, err := evalNode(e.Children[0], cfg)
		if err != nil {
			return nil, err
		}
		acc := minuend
		for _, s := range e.Children[1:] {
			sub, err := evalNode(s, cfg)
			if err != nil {
				return nil, err
			}
			acc, err = acc.AndNot(sub)
			if err != nil {
				return nil, fmt.Errorf("setalgebra: evaluate: subtract: %w", err)
			}
		}
		return acc, nil

	case KindComplement:
		return nil, fmt.Errorf("setalgebra: evaluate: %w: residual Complement node", ErrUnknownOperator)

	default:
		return nil, fmt.Errorf("setalgebra: evaluate: %w: kind %v", ErrUnknownOperator, e.Kind)
	}
}

// foldNode evaluates every child and combines them left-to-right with op.
func foldNode(children []*Expr, cfg Config, op func(BitsetLike, BitsetLike) (BitsetLike, error)) (BitsetLike, error) {
	acc, err := evalNode(children[0], cfg)
	if err != nil {
		return nil, err
	}
	for _, c := range children[1:] {
		next, err := evalNode(c, cfg)
		if err != nil {
			return nil, err
		}
		acc, err = op(acc, next)
		if err != nil {
			return nil, fmt.Errorf("setalgebra: evaluate: %w", err)
		}
	}
	return acc, nil
}
