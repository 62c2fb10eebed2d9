package ports

import "context"

// TextGenerator define el puerto de salida para los proveedores de generación de texto.
// Cualquier adaptador (OpenAI, Anthropic, Gemini, mock) implementa esta interfaz; la
// aplicación solo conoce este contrato.
type TextGenerator interface {
	// Generate envía prompt al proveedor con la API key del usuario y devuelve el texto.
	// Devuelve un error que envuelve domain.ErrAuth si la key falta o es rechazada, y
	// domain.ErrUpstream ante cualquier otro fallo. El ctx debe llevar timeout.
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}
