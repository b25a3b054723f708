// Package photo procesa la foto de entrada del reloj checador.
package photo

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/jhoicas/nyx-os/internal/application/ports"
)

var _ ports.PhotoMirror = (*Mirror)(nil)

// MaxWidth ancho máximo de la foto guardada; las más anchas se reducen.
const MaxWidth = 640

// Mirror espeja la foto como la ve el empleado en la cámara frontal.
type Mirror struct {
	Quality int
}

// NewMirror calidad JPEG 85.
func NewMirror() *Mirror { return &Mirror{Quality: 85} }

// MirrorJPEG decodifica, reduce a MaxWidth si hace falta, voltea en horizontal
// y re-codifica como JPEG.
func (m *Mirror) MirrorJPEG(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("photo: decodificar: %w", err)
	}
	if img.Bounds().Dx() > MaxWidth {
		img = imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
	}
	flipped := imaging.FlipH(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flipped, imaging.JPEG, imaging.JPEGQuality(m.Quality)); err != nil {
		return nil, fmt.Errorf("photo: codificar: %w", err)
	}
	return buf.Bytes(), nil
}
