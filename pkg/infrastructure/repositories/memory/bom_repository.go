package memory

import (
	"fmt"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/repositories"
)

// BOMRepository is the in-memory bill-of-materials store: a map from
// parent key to its edge list in insertion order.
type BOMRepository struct {
	edges   map[entities.MaterialKey][]*entities.BOMEdge
	parents []entities.MaterialKey
}

// NewBOMRepository creates an empty BOM store.
func NewBOMRepository() *BOMRepository {
	return &BOMRepository{
		edges: make(map[entities.MaterialKey][]*entities.BOMEdge),
	}
}

// Verify interface compliance
var _ repositories.BOMRepository = (*BOMRepository)(nil)

// LoadEdges loads edges in order.
func (r *BOMRepository) LoadEdges(edges []*entities.BOMEdge) error {
	for _, edge := range edges {
		if err := r.AddEdge(edge); err != nil {
			return err
		}
	}
	return nil
}

// AddEdge appends an edge to its parent's list. Duplicate parent/child
// pairs are appended, not merged; both edges count during explosion. A
// missing edge id is filled in.
func (r *BOMRepository) AddEdge(edge *entities.BOMEdge) error {
	if !edge.QtyPer.IsPositive() {
		return &entities.ValidationError{Msg: "quantity per unit must be positive, got " + edge.QtyPer.String()}
	}
	if edge.ID == "" {
		edge.ID = "bom_" + idNode().Generate().String()
	}
	if _, exists := r.edges[edge.ParentKey]; !exists {
		r.parents = append(r.parents, edge.ParentKey)
	}
	r.edges[edge.ParentKey] = append(r.edges[edge.ParentKey], edge)
	return nil
}

// RemoveEdge deletes one edge of a parent by edge id.
func (r *BOMRepository) RemoveEdge(parentKey entities.MaterialKey, edgeID string) error {
	edges := r.edges[parentKey]
	for i, edge := range edges {
		if edge.ID == edgeID {
			r.edges[parentKey] = append(edges[:i], edges[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("BOM edge not found: %s under %s", edgeID, parentKey)
}

// ChildrenOf returns the direct edges of a parent in insertion order,
// empty when the parent has no BOM.
func (r *BOMRepository) ChildrenOf(parentKey entities.MaterialKey) []*entities.BOMEdge {
	edges := r.edges[parentKey]
	out := make([]*entities.BOMEdge, len(edges))
	copy(out, edges)
	return out
}

// AllEdges returns every edge grouped by parent in insertion order.
func (r *BOMRepository) AllEdges() []*entities.BOMEdge {
	var all []*entities.BOMEdge
	for _, parent := range r.parents {
		all = append(all, r.edges[parent]...)
	}
	return all
}

// Parents returns every material key that has at least one edge.
func (r *BOMRepository) Parents() []entities.MaterialKey {
	var parents []entities.MaterialKey
	for _, parent := range r.parents {
		if len(r.edges[parent]) > 0 {
			parents = append(parents, parent)
		}
	}
	return parents
}
