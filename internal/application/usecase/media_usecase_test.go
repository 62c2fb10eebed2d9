package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

func TestMediaUpload_CompressesIntoCategoryFolder(t *testing.T) {
	st := new(mockStorage)
	st.On("Upload", mock.Anything, []byte("c:img"), "image/jpeg", "limpiarte/Limpieza").
		Return(&entity.MediaAsset{URL: "https://cdn/x.jpg", AssetID: "limpiarte/Limpieza/x.jpg"}, nil)

	uc := usecase.NewMediaUseCase(st, stubCompressor{contentType: "image/jpeg"}, "limpiarte", nil)
	resp, err := uc.Upload(context.Background(), []byte("img"), "Limpieza")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.jpg", resp.URL)
	st.AssertExpectations(t)
}

func TestMediaUpload_DefaultFolderAndErrors(t *testing.T) {
	st := new(mockStorage)
	st.On("Upload", mock.Anything, mock.Anything, mock.Anything, "limpiarte/General").
		Return(nil, errors.New("503"))

	uc := usecase.NewMediaUseCase(st, stubCompressor{contentType: "image/png"}, "limpiarte", nil)
	_, err := uc.Upload(context.Background(), []byte("img"), "")
	assert.ErrorIs(t, err, domain.ErrUpstream)

	_, err = uc.Upload(context.Background(), nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	notImage := usecase.NewMediaUseCase(st, stubCompressor{contentType: "text/plain"}, "limpiarte", nil)
	_, err = notImage.Upload(context.Background(), []byte("hola"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMedia_NotConfigured(t *testing.T) {
	uc := usecase.NewMediaUseCase(nil, nil, "limpiarte", nil)
	_, err := uc.Upload(context.Background(), []byte("x"), "")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = uc.List(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.ErrorIs(t, uc.Delete(context.Background(), "a"), domain.ErrNotConfigured)
}

func TestMediaListAndDelete(t *testing.T) {
	st := new(mockStorage)
	st.On("List", mock.Anything, "limpiarte").Return([]entity.MediaAsset{{URL: "u", AssetID: "limpiarte/a.jpg"}}, nil)
	st.On("Delete", mock.Anything, "limpiarte/a.jpg").Return(nil)
	uc := usecase.NewMediaUseCase(st, nil, "limpiarte", nil)

	list, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	require.NoError(t, uc.Delete(context.Background(), "/limpiarte/a.jpg"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "../etc/passwd"), domain.ErrInvalidInput)
	st.AssertExpectations(t)
}
