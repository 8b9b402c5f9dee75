package entities

// ChainAsset is a raw record cached from the remote ledger. Data holds
// the JSON attribute payload as published; parsing it is the codec's job.
type ChainAsset struct {
	Address string
	Name    string
	Owner   string
	Data    string
}
