package entities

import (
	"fmt"
	"strings"
)

// ValidationError reports invalid input to a mutating operation. The
// operation has no effect when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFoundError reports a material reference that resolved against
// neither the remote nor the local catalog.
type NotFoundError struct {
	Key MaterialKey
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("material not found: %s", e.Key)
}

// CycleError reports a BOM cycle reachable from an explosion root. Path
// holds the offending chain ending in the repeated key.
type CycleError struct {
	Path []MaterialKey
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, key := range e.Path {
		parts[i] = string(key)
	}
	return "BOM cycle detected: " + strings.Join(parts, " -> ")
}

// ShortfallError rejects confirmation of a pick plan that still has
// unmet requirements. Nothing is mutated when one is returned.
type ShortfallError struct {
	PlanID string
	Short  []MaterialKey
}

func (e *ShortfallError) Error() string {
	parts := make([]string, len(e.Short))
	for i, key := range e.Short {
		parts[i] = string(key)
	}
	return fmt.Sprintf("pick plan %s has shortfall on: %s", e.PlanID, strings.Join(parts, ", "))
}
