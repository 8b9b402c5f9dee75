package entities

import "github.com/shopspring/decimal"

// BOMEdge links a parent material to one component with a per-unit
// quantity. A parent may carry several edges to the same child; they are
// counted additively during explosion, never merged.
type BOMEdge struct {
	ID        string
	ParentKey MaterialKey
	ChildKey  MaterialKey
	QtyPer    decimal.Decimal
}

// NewBOMEdge creates a validated BOMEdge.
func NewBOMEdge(parentKey, childKey MaterialKey, qtyPer decimal.Decimal) (*BOMEdge, error) {
	if parentKey == "" {
		return nil, &ValidationError{Msg: "parent material key cannot be empty"}
	}
	if childKey == "" {
		return nil, &ValidationError{Msg: "child material key cannot be empty"}
	}
	if parentKey == childKey {
		return nil, &ValidationError{Msg: "parent and child material keys cannot be the same: " + string(parentKey)}
	}
	if !qtyPer.IsPositive() {
		return nil, &ValidationError{Msg: "quantity per unit must be positive, got " + qtyPer.String()}
	}

	return &BOMEdge{
		ParentKey: parentKey,
		ChildKey:  childKey,
		QtyPer:    qtyPer,
	}, nil
}
