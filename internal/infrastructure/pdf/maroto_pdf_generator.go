// Package pdf genera el comprobante PDF de un gasto capturado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nyx OS + Proveedor  │  Folio + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Inventario | Costo u. | Precio │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  FOOTER: QR con el folio                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/pkg/money"
)

var _ ports.ExpensePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 40, Green: 30, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ExpensePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateExpensePDF genera el PDF y devuelve sus bytes. inventory se usa para
// nombrar los artículos vinculados.
func (g *MarotoPDFGenerator) GenerateExpensePDF(
	_ context.Context,
	expense entity.Expense,
	inventory []entity.InventoryItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Gasto "+expense.ID, true).
		WithAuthor("Nyx OS", true).
		Build()

	m := maroto.New(cfg)

	names := make(map[string]string, len(inventory))
	for _, it := range inventory {
		names[it.ID] = it.Nombre
	}

	m.AddRows(headerRow(expense))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(expense.Items, names)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(expense))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(expense))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(expense entity.Expense) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Nyx OS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Proveedor: "+nonEmpty(expense.Proveedor, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE GASTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(expense.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+expense.Fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 4, align.Left),
		h("Inventario", 3, align.Left),
		h("Costo u.", 2, align.Right),
		h("Precio", 2, align.Right),
	)
}

// tableDetailRows una fila por línea; las no vinculadas muestran "sin vincular".
func tableDetailRows(items []entity.ExpenseItem, names map[string]string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		inv := "sin vincular"
		if it.Linked() {
			inv = nonEmpty(names[it.InventoryID], it.InventoryID)
		}
		unit := "—"
		if !it.Cantidad.IsZero() {
			unit = money.Format(it.Precio.Div(it.Cantidad))
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(it.Cantidad.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(it.Descripcion, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(inv, props.Text{Size: 8, Align: align.Left, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(unit, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money.Format(it.Precio), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(expense entity.Expense) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(money.Format(expense.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func footerRow(expense entity.Expense) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(expense.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New(fmt.Sprintf("%d líneas capturadas desde ticket.", len(expense.Items)), props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Los costos unitarios de los artículos vinculados se actualizaron con este gasto.", props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
