package services

import (
	"github.com/distordia/mrp/pkg/domain/entities"
)

// GraphValidator checks BOM structure integrity ahead of planning.
type GraphValidator struct{}

// NewGraphValidator creates a new graph validator.
func NewGraphValidator() *GraphValidator {
	return &GraphValidator{}
}

// GraphValidationResult contains the results of BOM graph validation.
// Duplicate parent/child edges are legal (they aggregate during
// explosion) and are not reported here.
type GraphValidationResult struct {
	HasCycles  bool
	CyclePaths [][]entities.MaterialKey
	Errors     []string
}

// Validate runs cycle detection over the full edge set.
func (v *GraphValidator) Validate(edges []*entities.BOMEdge) *GraphValidationResult {
	result := &GraphValidationResult{
		CyclePaths: make([][]entities.MaterialKey, 0),
		Errors:     make([]string, 0),
	}

	adjacency := buildAdjacency(edges)
	cycles := detectCycles(adjacency)
	result.HasCycles = len(cycles) > 0
	result.CyclePaths = cycles

	for _, cycle := range cycles {
		result.Errors = append(result.Errors, (&entities.CycleError{Path: cycle}).Error())
	}

	return result
}

// buildAdjacency creates a parent -> children map with duplicate edges
// collapsed; reachability is all cycle detection needs.
func buildAdjacency(edges []*entities.BOMEdge) map[entities.MaterialKey][]entities.MaterialKey {
	adjacency := make(map[entities.MaterialKey][]entities.MaterialKey)

	for _, edge := range edges {
		children := adjacency[edge.ParentKey]
		found := false
		for _, child := range children {
			if child == edge.ChildKey {
				found = true
				break
			}
		}
		if !found {
			adjacency[edge.ParentKey] = append(children, edge.ChildKey)
		}
	}

	return adjacency
}

// detectCycles uses DFS to find cycles in the BOM structure.
func detectCycles(adjacency map[entities.MaterialKey][]entities.MaterialKey) [][]entities.MaterialKey {
	visited := make(map[entities.MaterialKey]bool)
	onStack := make(map[entities.MaterialKey]bool)
	cycles := make([][]entities.MaterialKey, 0)

	for parent := range adjacency {
		if !visited[parent] {
			dfsDetectCycle(parent, adjacency, visited, onStack, nil, &cycles)
		}
	}

	return cycles
}

func dfsDetectCycle(
	current entities.MaterialKey,
	adjacency map[entities.MaterialKey][]entities.MaterialKey,
	visited map[entities.MaterialKey]bool,
	onStack map[entities.MaterialKey]bool,
	path []entities.MaterialKey,
	cycles *[][]entities.MaterialKey,
) {
	visited[current] = true
	onStack[current] = true
	path = append(path, current)

	for _, child := range adjacency[current] {
		if !visited[child] {
			dfsDetectCycle(child, adjacency, visited, onStack, path, cycles)
		} else if onStack[child] {
			cycleStart := -1
			for i, key := range path {
				if key == child {
					cycleStart = i
					break
				}
			}
			if cycleStart != -1 {
				cycle := make([]entities.MaterialKey, 0, len(path)-cycleStart+1)
				cycle = append(cycle, path[cycleStart:]...)
				cycle = append(cycle, child)
				*cycles = append(*cycles, cycle)
			}
		}
	}

	onStack[current] = false
}
