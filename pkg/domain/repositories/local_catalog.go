package repositories

import "github.com/distordia/mrp/pkg/domain/entities"

// LocalCatalog provides access to the offline material catalog.
type LocalCatalog interface {
	Get(id string) (*entities.LocalMaterial, bool)
	List() []entities.LocalMaterial
	Save(material *entities.LocalMaterial) error
	Delete(id string) error
}
