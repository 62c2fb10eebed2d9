package usecase

// Funcionalidades opcionales que dependen de credenciales externas.
const (
	FeatureMedia = "media"
	FeatureAI    = "ai"
)

// FeatureSet indica qué funcionalidades tienen credenciales configuradas.
type FeatureSet map[string]bool

// IsConfigured reporta si feature está habilitada.
func (f FeatureSet) IsConfigured(feature string) bool {
	return f[feature]
}
