package memory

import (
	"github.com/google/uuid"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/repositories"
)

// RemoteCatalog is the in-memory cache of remote ledger assets. The
// integration layer fills it from chain queries; the core only reads it.
type RemoteCatalog struct {
	assets []entities.ChainAsset
	index  map[string]int
}

// NewRemoteCatalog creates an empty remote catalog cache.
func NewRemoteCatalog() *RemoteCatalog {
	return &RemoteCatalog{
		index: make(map[string]int),
	}
}

// Verify interface compliance
var _ repositories.RemoteCatalog = (*RemoteCatalog)(nil)
var _ repositories.AssetPublisher = (*RemoteCatalog)(nil)

// LoadAssets loads a batch of fetched assets into the cache.
func (c *RemoteCatalog) LoadAssets(assets []entities.ChainAsset) {
	for _, asset := range assets {
		c.SaveAsset(asset)
	}
}

// SaveAsset inserts an asset, or updates it when the address is already
// cached. Catalog order is first-seen order.
func (c *RemoteCatalog) SaveAsset(asset entities.ChainAsset) {
	if i, exists := c.index[asset.Address]; exists {
		c.assets[i] = asset
		return
	}
	c.index[asset.Address] = len(c.assets)
	c.assets = append(c.assets, asset)
}

// GetAsset returns the cached asset at an address.
func (c *RemoteCatalog) GetAsset(address string) (*entities.ChainAsset, bool) {
	i, exists := c.index[address]
	if !exists {
		return nil, false
	}
	asset := c.assets[i]
	return &asset, true
}

// AllAssets returns every cached asset in catalog order.
func (c *RemoteCatalog) AllAssets() []entities.ChainAsset {
	out := make([]entities.ChainAsset, len(c.assets))
	copy(out, c.assets)
	return out
}

// Publish registers an asset in the cache under a generated address.
// It stands in for the remote ledger's register operation in tests and
// offline runs.
func (c *RemoteCatalog) Publish(name string, data []byte) (string, error) {
	address := "asset-" + uuid.NewString()
	c.SaveAsset(entities.ChainAsset{
		Address: address,
		Name:    name,
		Data:    string(data),
	})
	return address, nil
}
