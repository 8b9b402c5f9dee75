package repositories

import "github.com/distordia/mrp/pkg/domain/entities"

// RemoteCatalog provides access to the cached remote ledger assets. The
// integration layer owns synchronization with the chain; the core only
// reads the already-fetched records.
type RemoteCatalog interface {
	GetAsset(address string) (*entities.ChainAsset, bool)
	AllAssets() []entities.ChainAsset
	SaveAsset(asset entities.ChainAsset)
}

// AssetPublisher registers an asset payload on the remote ledger and
// returns the address it was assigned. Services that produce
// publishable records (pallets, picking lists, invoices) call it when
// one is configured.
type AssetPublisher interface {
	Publish(name string, data []byte) (address string, err error)
}
