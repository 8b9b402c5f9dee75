package memory

import (
	"fmt"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/repositories"
)

// LotRepository is the in-memory lot (pallet) store. Storage order is
// insertion order, which is also the order allocation consumes lots in.
type LotRepository struct {
	lots  []*entities.Lot
	index map[string]int
}

// NewLotRepository creates an empty lot store.
func NewLotRepository() *LotRepository {
	return &LotRepository{
		index: make(map[string]int),
	}
}

// Verify interface compliance
var _ repositories.LotRepository = (*LotRepository)(nil)

// LoadLots loads lots in order.
func (r *LotRepository) LoadLots(lots []*entities.Lot) error {
	for _, lot := range lots {
		if err := r.Save(lot); err != nil {
			return err
		}
	}
	return nil
}

// Save inserts a new lot. Existing lots are mutated through the pointers
// this store hands out, not re-saved.
func (r *LotRepository) Save(lot *entities.Lot) error {
	if lot.ID == "" {
		return &entities.ValidationError{Msg: "lot id cannot be empty"}
	}
	if _, exists := r.index[lot.ID]; exists {
		return &entities.ValidationError{Msg: fmt.Sprintf("lot %s already exists", lot.ID)}
	}
	r.index[lot.ID] = len(r.lots)
	r.lots = append(r.lots, lot)
	return nil
}

// Get returns the live lot record with the given id.
func (r *LotRepository) Get(id string) (*entities.Lot, bool) {
	i, exists := r.index[id]
	if !exists {
		return nil, false
	}
	return r.lots[i], true
}

// Remove deletes a lot by id.
func (r *LotRepository) Remove(id string) error {
	i, exists := r.index[id]
	if !exists {
		return fmt.Errorf("lot not found: %s", id)
	}
	r.lots = append(r.lots[:i], r.lots[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.lots); j++ {
		r.index[r.lots[j].ID] = j
	}
	return nil
}

// ByMaterial returns every lot for a material in storage order.
func (r *LotRepository) ByMaterial(key entities.MaterialKey) []*entities.Lot {
	var lots []*entities.Lot
	for _, lot := range r.lots {
		if lot.MaterialKey == key {
			lots = append(lots, lot)
		}
	}
	return lots
}

// Available returns the lots allocation may draw from: status available
// and positive quantity, in storage order.
func (r *LotRepository) Available(key entities.MaterialKey) []*entities.Lot {
	var lots []*entities.Lot
	for _, lot := range r.lots {
		if lot.MaterialKey == key && lot.Status == entities.LotAvailable && lot.Quantity.IsPositive() {
			lots = append(lots, lot)
		}
	}
	return lots
}

// All returns every lot in storage order.
func (r *LotRepository) All() []*entities.Lot {
	out := make([]*entities.Lot, len(r.lots))
	copy(out, r.lots)
	return out
}
