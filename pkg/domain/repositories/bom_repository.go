package repositories

import "github.com/distordia/mrp/pkg/domain/entities"

// BOMRepository stores the bill-of-materials adjacency structure.
type BOMRepository interface {
	AddEdge(edge *entities.BOMEdge) error
	RemoveEdge(parentKey entities.MaterialKey, edgeID string) error
	// ChildrenOf returns the direct edges of a parent in insertion order,
	// empty when the parent has no BOM.
	ChildrenOf(parentKey entities.MaterialKey) []*entities.BOMEdge
	AllEdges() []*entities.BOMEdge
	// Parents returns every material key that has at least one edge.
	Parents() []entities.MaterialKey
}
