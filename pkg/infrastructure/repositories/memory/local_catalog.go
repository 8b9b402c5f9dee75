package memory

import (
	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/repositories"
)

// LocalCatalog is the in-memory offline material catalog.
type LocalCatalog struct {
	materials []entities.LocalMaterial
	index     map[string]int
}

// NewLocalCatalog creates an empty local catalog.
func NewLocalCatalog() *LocalCatalog {
	return &LocalCatalog{
		index: make(map[string]int),
	}
}

// Verify interface compliance
var _ repositories.LocalCatalog = (*LocalCatalog)(nil)

// LoadMaterials loads catalog rows in order.
func (c *LocalCatalog) LoadMaterials(materials []*entities.LocalMaterial) error {
	for _, m := range materials {
		if err := c.Save(m); err != nil {
			return err
		}
	}
	return nil
}

// Save inserts a row, or replaces the row with the same id.
func (c *LocalCatalog) Save(material *entities.LocalMaterial) error {
	if material.ID == "" {
		return &entities.ValidationError{Msg: "local material id cannot be empty"}
	}
	if i, exists := c.index[material.ID]; exists {
		c.materials[i] = *material
		return nil
	}
	c.index[material.ID] = len(c.materials)
	c.materials = append(c.materials, *material)
	return nil
}

// Get returns the row with the given id.
func (c *LocalCatalog) Get(id string) (*entities.LocalMaterial, bool) {
	i, exists := c.index[id]
	if !exists {
		return nil, false
	}
	material := c.materials[i]
	return &material, true
}

// List returns every row in catalog order.
func (c *LocalCatalog) List() []entities.LocalMaterial {
	out := make([]entities.LocalMaterial, len(c.materials))
	copy(out, c.materials)
	return out
}

// Delete removes a row by id.
func (c *LocalCatalog) Delete(id string) error {
	i, exists := c.index[id]
	if !exists {
		return &entities.NotFoundError{Key: entities.MaterialKey(id)}
	}
	c.materials = append(c.materials[:i], c.materials[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.materials); j++ {
		c.index[c.materials[j].ID] = j
	}
	return nil
}
