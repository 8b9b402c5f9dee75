package dto

import (
	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
)

// PlanResult is the complete output of a requirements planning run.
type PlanResult struct {
	RootKey     entities.MaterialKey       `json:"rootKey"`
	ProductName string                     `json:"productName"`
	PlannedQty  decimal.Decimal            `json:"plannedQty"`
	Lines       []entities.RequirementLine `json:"lines"`
	Summary     entities.PlanSummary       `json:"summary"`
	// Dropped lists catalog references that were silently excluded while
	// building the material view, for callers that want visibility.
	Dropped []string `json:"dropped,omitempty"`
}
