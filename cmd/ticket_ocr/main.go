// ticket_ocr extrae las líneas de un ticket desde la terminal con el mismo proveedor
// (o servidor remoto) que usa la API. Útil para probar prompts y claves.
//
// Uso: go run ./cmd/ticket_ocr ruta/ticket.jpg
// Respeta AI_PROVIDER, GEMINI_API_KEY, ANTHROPIC_API_KEY, OCR_MODE y OCR_REMOTE_URL.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/expense"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	infraai "github.com/jhoicas/nyx-os/internal/infrastructure/ai"
	infraocr "github.com/jhoicas/nyx-os/internal/infrastructure/ocr"
	"github.com/jhoicas/nyx-os/pkg/config"
	"github.com/jhoicas/nyx-os/pkg/money"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: ticket_ocr ruta/ticket.jpg")
		os.Exit(2)
	}
	imgPath := os.Args[1]

	cfg, err := config.LoadOCR()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(imgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer imagen: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.OCR.Timeout)
	defer cancel()

	var extractor ports.TicketExtractor
	if cfg.OCR.Mode == "remote" {
		extractor = infraocr.NewRemoteOCRClient(cfg.OCR.RemoteURL, http.DefaultClient)
	} else {
		extractor, err = infraai.NewFromConfig(ctx, cfg.AI)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Proveedor de IA: %v\n", err)
			os.Exit(1)
		}
	}

	items, err := extractor.ExtractItems(ctx, dto.OCRImage{
		Data:     data,
		MIMEType: mimeFromExt(imgPath),
		Filename: filepath.Base(imgPath),
	}, expense.Prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "OCR: %v\n", err)
		os.Exit(1)
	}

	total := decimal.Zero
	for _, it := range items {
		precio := decimal.NewFromFloat(it.Precio)
		total = total.Add(precio)
		fmt.Printf("%6s  %-40s %12s\n", decimal.NewFromFloat(it.Cantidad).String(), it.Descripcion, money.Format(precio))
	}
	fmt.Printf("%d líneas, total %s\n", len(items), money.Format(total))
}

func mimeFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	return "image/jpeg"
}
