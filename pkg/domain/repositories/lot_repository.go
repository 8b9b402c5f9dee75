package repositories

import "github.com/distordia/mrp/pkg/domain/entities"

// LotRepository stores physical lots. Returned pointers refer to live
// records; callers mutate them under the integration layer's single-writer
// discipline.
type LotRepository interface {
	Get(id string) (*entities.Lot, bool)
	Save(lot *entities.Lot) error
	Remove(id string) error
	// ByMaterial returns every lot for a material in storage order.
	ByMaterial(key entities.MaterialKey) []*entities.Lot
	// Available returns lots with status available and positive quantity,
	// in storage order. Allocation consumes them in exactly this order.
	Available(key entities.MaterialKey) []*entities.Lot
	All() []*entities.Lot
}
