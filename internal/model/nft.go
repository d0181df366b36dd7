package model

// Тиры NFT
const (
	TierCommon    = "common"
	TierRare      = "rare"
	TierLegendary = "legendary"
)

// NFT - коллекционный предмет. Создается только как награда за спин,
// владелец назначается при создании и не меняется.
type NFT struct {
	ID    int64
	Name  string
	Tier  string
	Owner string
}
