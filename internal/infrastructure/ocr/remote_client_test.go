package ocr_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/infrastructure/ocr"
)

func TestRemoteOCRClient_EnviaMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ocr", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "extrae", r.FormValue("prompt"))
		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, []byte("jpeg"), data)
		assert.Equal(t, "t.jpg", hdr.Filename)
		_, _ = w.Write([]byte(`[{"descripcion":"Cerveza Victoria","cantidad":10,"precio":185}]`))
	}))
	defer srv.Close()

	c := ocr.NewRemoteOCRClient(srv.URL+"/", nil)
	items, err := c.ExtractItems(context.Background(), dto.OCRImage{Data: []byte("jpeg"), Filename: "t.jpg"}, "extrae")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 185.0, items[0].Precio)
}

func TestRemoteOCRClient_MensajeDelServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Error de formato"}`))
	}))
	defer srv.Close()

	_, err := ocr.NewRemoteOCRClient(srv.URL, nil).ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "p")
	var um *domain.UserMessageError
	require.True(t, errors.As(err, &um))
	assert.Equal(t, "Error de formato", um.Message)
}

func TestRemoteOCRClient_ErrorSinMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := ocr.NewRemoteOCRClient(srv.URL, nil).ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "p")
	var um *domain.UserMessageError
	require.True(t, errors.As(err, &um))
	assert.Equal(t, ocr.ServerFailureMessage, um.Message)
}

func TestRemoteOCRClient_CuerpoNoValido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	_, err := ocr.NewRemoteOCRClient(srv.URL, nil).ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "p")
	assert.ErrorIs(t, err, domain.ErrOCRFormat)
}
