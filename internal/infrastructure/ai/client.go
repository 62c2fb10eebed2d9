package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/catalogo-admin/internal/domain"
)

// Options parámetros comunes de generación. BaseURL vacío usa el endpoint público del proveedor.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
	BaseURL     string
}

func (o Options) withDefaults(model, baseURL string) Options {
	if o.Model == "" {
		o.Model = model
	}
	if o.BaseURL == "" {
		o.BaseURL = baseURL
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = 160
	}
	return o
}

func newHTTPClient() *http.Client {
	// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
	return &http.Client{Timeout: 25 * time.Second}
}

// postJSON envía payload y devuelve el cuerpo (limitado a 64 KB) y el status.
// Los fallos de red se etiquetan como ErrUpstream del proveedor.
func postJSON(ctx context.Context, c *http.Client, provider, url string, headers map[string]string, payload any) ([]byte, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("AI: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, domain.Upstream(provider, fmt.Errorf("timeout o cancelación: %w", ctx.Err()))
		}
		return nil, 0, domain.Upstream(provider, fmt.Errorf("llamada HTTP fallida: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, resp.StatusCode, domain.Upstream(provider, fmt.Errorf("leer respuesta: %w", err))
	}
	return raw, resp.StatusCode, nil
}

// statusError clasifica una respuesta no exitosa: 401/403 son credenciales rechazadas.
func statusError(provider string, status int, msg string) error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w (%s): %s", domain.ErrAuth, provider, msg)
	}
	return domain.Upstream(provider, fmt.Errorf("HTTP %d: %s", status, msg))
}

func missingKey(provider string) error {
	return fmt.Errorf("%w (%s): API key vacía", domain.ErrAuth, provider)
}
