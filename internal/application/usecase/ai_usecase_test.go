package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/memory"
)

var ana = entity.Session{UserID: "u-ana", Email: "ana@limpiarte.com", Role: entity.RoleAdmin}

func TestGenerateDescription_UsesSessionKey(t *testing.T) {
	ctx := context.Background()
	settings := usecase.NewSettingsUseCase(memory.NewSettingsStore(), "sk-")
	require.NoError(t, settings.SaveAPIKey(ctx, ana, "sk-ana"))

	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, "sk-ana", mock.MatchedBy(func(p string) bool {
		return assert.Contains(t, p, "Nombre del producto: Balde") && assert.Contains(t, p, "Categoría: Limpieza")
	})).Return("  Balde resistente.  ", nil)

	uc := usecase.NewAIUseCase(gen, settings, nil)
	resp, err := uc.GenerateDescription(ctx, ana, dto.DescriptionRequest{Name: "Balde", Category: "Limpieza"})
	require.NoError(t, err)
	assert.Equal(t, "Balde resistente.", resp.Description)
	gen.AssertExpectations(t)
}

func TestGenerateDescription_NoKeyIsNotConfigured(t *testing.T) {
	gen := new(mockGenerator)
	uc := usecase.NewAIUseCase(gen, usecase.NewSettingsUseCase(memory.NewSettingsStore(), "sk-"), nil)

	_, err := uc.GenerateDescription(context.Background(), ana, dto.DescriptionRequest{Name: "Balde"})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateDescription_ProviderErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	settings := usecase.NewSettingsUseCase(memory.NewSettingsStore(), "")
	require.NoError(t, settings.SaveAPIKey(ctx, ana, "key"))

	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, "key", mock.Anything).Return("", domain.ErrAuth)

	_, err := usecase.NewAIUseCase(gen, settings, nil).
		GenerateDescription(ctx, ana, dto.DescriptionRequest{Name: "Balde"})
	assert.True(t, errors.Is(err, domain.ErrAuth))
}

func TestGenerateDescription_NameRequired(t *testing.T) {
	uc := usecase.NewAIUseCase(new(mockGenerator), usecase.NewSettingsUseCase(memory.NewSettingsStore(), ""), nil)
	_, err := uc.GenerateDescription(context.Background(), ana, dto.DescriptionRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSaveAPIKey_PrefixAndIsolation(t *testing.T) {
	ctx := context.Background()
	settings := usecase.NewSettingsUseCase(memory.NewSettingsStore(), "sk-")

	assert.ErrorIs(t, settings.SaveAPIKey(ctx, ana, "abc"), domain.ErrInvalidInput)
	assert.ErrorIs(t, settings.SaveAPIKey(ctx, entity.Session{}, "sk-x"), domain.ErrUnauthorized)
	require.NoError(t, settings.SaveAPIKey(ctx, ana, " sk-ana "))

	key, err := settings.APIKey(ctx, ana)
	require.NoError(t, err)
	assert.Equal(t, "sk-ana", key)

	other, err := settings.APIKey(ctx, entity.Session{UserID: "u-otro"})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestDescriptionPrompt_DefaultCategory(t *testing.T) {
	assert.Contains(t, usecase.DescriptionPrompt("Balde", ""), "Categoría: General")
}
