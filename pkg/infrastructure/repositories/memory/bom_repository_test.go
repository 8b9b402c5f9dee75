package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
)

func testEdge(t *testing.T, parent, child entities.MaterialKey, qty int64) *entities.BOMEdge {
	t.Helper()
	edge, err := entities.NewBOMEdge(parent, child, decimal.NewFromInt(qty))
	if err != nil {
		t.Fatalf("Failed to create edge: %v", err)
	}
	return edge
}

func TestBOMRepository_AddAndQuery(t *testing.T) {
	repo := NewBOMRepository()

	if err := repo.AddEdge(testEdge(t, "laptop", "board", 1)); err != nil {
		t.Fatalf("Failed to add edge: %v", err)
	}
	if err := repo.AddEdge(testEdge(t, "laptop", "screen", 1)); err != nil {
		t.Fatalf("Failed to add edge: %v", err)
	}
	if err := repo.AddEdge(testEdge(t, "board", "chip", 4)); err != nil {
		t.Fatalf("Failed to add edge: %v", err)
	}

	children := repo.ChildrenOf("laptop")
	if len(children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(children))
	}
	if children[0].ChildKey != "board" || children[1].ChildKey != "screen" {
		t.Errorf("Expected insertion order board, screen; got %s, %s", children[0].ChildKey, children[1].ChildKey)
	}
	if children[0].ID == "" {
		t.Error("Expected edge id to be generated")
	}

	parents := repo.Parents()
	if len(parents) != 2 || parents[0] != "laptop" || parents[1] != "board" {
		t.Errorf("Expected parents [laptop board], got %v", parents)
	}

	if got := len(repo.AllEdges()); got != 3 {
		t.Errorf("Expected 3 edges total, got %d", got)
	}
}

func TestBOMRepository_DuplicateEdgesKept(t *testing.T) {
	repo := NewBOMRepository()

	if err := repo.AddEdge(testEdge(t, "frame", "strut", 1)); err != nil {
		t.Fatalf("Failed to add edge: %v", err)
	}
	if err := repo.AddEdge(testEdge(t, "frame", "strut", 2)); err != nil {
		t.Fatalf("Failed to add edge: %v", err)
	}

	if got := len(repo.ChildrenOf("frame")); got != 2 {
		t.Errorf("Expected duplicate edges kept separately, got %d", got)
	}
}

func TestBOMRepository_RemoveEdge(t *testing.T) {
	repo := NewBOMRepository()

	edge := testEdge(t, "laptop", "board", 1)
	if err := repo.AddEdge(edge); err != nil {
		t.Fatalf("Failed to add edge: %v", err)
	}

	if err := repo.RemoveEdge("laptop", edge.ID); err != nil {
		t.Fatalf("Failed to remove edge: %v", err)
	}
	if got := len(repo.ChildrenOf("laptop")); got != 0 {
		t.Errorf("Expected no children after removal, got %d", got)
	}

	if err := repo.RemoveEdge("laptop", "missing"); err == nil {
		t.Error("Expected error removing unknown edge")
	}
}

func TestBOMRepository_RejectsInvalidQuantity(t *testing.T) {
	repo := NewBOMRepository()

	edge := &entities.BOMEdge{ParentKey: "a", ChildKey: "b", QtyPer: decimal.Zero}
	if err := repo.AddEdge(edge); err == nil {
		t.Error("Expected error for non-positive quantity")
	}
}
