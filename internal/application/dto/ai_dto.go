package dto

// DescriptionRequest entrada para generar una descripción con IA.
type DescriptionRequest struct {
	Name     string `json:"name" validate:"notblank,max=200"`
	Category string `json:"category" validate:"max=100"`
}

// DescriptionResponse descripción generada.
type DescriptionResponse struct {
	Description string `json:"description"`
}

// SaveAPIKeyRequest API key del proveedor de IA del usuario.
type SaveAPIKeyRequest struct {
	APIKey string `json:"api_key" validate:"notblank"`
}
