package dto

// MediaAssetResponse imagen alojada.
type MediaAssetResponse struct {
	URL     string `json:"url"`
	AssetID string `json:"asset_id"`
}

// MediaListResponse imágenes de un tag.
type MediaListResponse struct {
	Items []MediaAssetResponse `json:"items"`
}
