package entity

// MediaAsset imagen alojada en el media host.
type MediaAsset struct {
	URL     string
	AssetID string
}
