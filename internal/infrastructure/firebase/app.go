package firebase

import (
	"context"
	"fmt"

	firebasesdk "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/jhoicas/catalogo-admin/pkg/config"
)

// NewApp inicializa la app de Firebase. Sin archivo de credenciales usa las
// Application Default Credentials (o el emulador si FIRESTORE_EMULATOR_HOST está definido).
func NewApp(ctx context.Context, cfg config.FirebaseConfig) (*firebasesdk.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	var fbCfg *firebasesdk.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebasesdk.Config{ProjectID: cfg.ProjectID}
	}
	app, err := firebasesdk.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("inicializar Firebase: %w", err)
	}
	return app, nil
}
