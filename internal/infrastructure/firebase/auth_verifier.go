package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// idTokenVerifier es el subconjunto de *auth.Client que se usa.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthVerifier valida ID tokens de Firebase Auth y arma la sesión.
// El rol sale del custom claim "role"; sin claim se usa defaultRole.
type AuthVerifier struct {
	client      idTokenVerifier
	defaultRole string
}

// NewAuthVerifier construye el verificador.
func NewAuthVerifier(client *auth.Client, defaultRole string) *AuthVerifier {
	return newAuthVerifier(client, defaultRole)
}

func newAuthVerifier(client idTokenVerifier, defaultRole string) *AuthVerifier {
	if defaultRole == "" {
		defaultRole = entity.RoleAdmin
	}
	return &AuthVerifier{client: client, defaultRole: defaultRole}
}

// Verify valida token con Firebase Auth.
func (v *AuthVerifier) Verify(ctx context.Context, token string) (entity.Session, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return entity.Session{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	email, _ := tok.Claims["email"].(string)
	role, _ := tok.Claims["role"].(string)
	if role == "" {
		role = v.defaultRole
	}
	return entity.Session{UserID: tok.UID, Email: email, Role: role}, nil
}
