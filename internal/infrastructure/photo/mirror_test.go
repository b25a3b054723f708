package photo_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/infrastructure/photo"
)

func TestMirrorJPEG_VolteaHorizontal(t *testing.T) {
	// mitad izquierda blanca, mitad derecha negra
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			c := color.RGBA{255, 255, 255, 255}
			if x >= 20 {
				c = color.RGBA{0, 0, 0, 255}
			}
			src.Set(x, y, c)
		}
	}
	var in bytes.Buffer
	require.NoError(t, png.Encode(&in, src))

	out, err := photo.NewMirror().MirrorJPEG(in.Bytes())
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())

	left, _, _, _ := img.At(5, 10).RGBA()
	right, _, _, _ := img.At(35, 10).RGBA()
	assert.Less(t, left, uint32(0x4000), "la izquierda debe quedar oscura")
	assert.Greater(t, right, uint32(0xc000), "la derecha debe quedar clara")
}

func TestMirrorJPEG_ReduceAnchas(t *testing.T) {
	var in bytes.Buffer
	require.NoError(t, png.Encode(&in, image.NewGray(image.Rect(0, 0, 1280, 720))))

	out, err := photo.NewMirror().MirrorJPEG(in.Bytes())
	require.NoError(t, err)
	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, photo.MaxWidth, img.Bounds().Dx())
}

func TestMirrorJPEG_NoEsImagen(t *testing.T) {
	_, err := photo.NewMirror().MirrorJPEG([]byte("texto"))
	assert.Error(t, err)
}
