// Package xlsx exporta inventario y gastos a libros de Excel con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

var _ ports.SpreadsheetExporter = (*Exporter)(nil)

// Nombres de las hojas generadas.
const (
	SheetInventario = "Inventario"
	SheetGastos     = "Gastos"
	SheetLineas     = "Lineas"
)

// Exporter implementa ports.SpreadsheetExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// InventoryXLSX una fila por artículo con su valor (stock × costo unitario).
func (e *Exporter) InventoryXLSX(_ context.Context, items []entity.InventoryItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetInventario); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}
	header := []any{"ID", "Nombre", "Categoría", "Stock", "UM", "Costo unitario", "Valor", "Proveedor"}
	if err := f.SetSheetRow(SheetInventario, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	for i, it := range items {
		r := []any{
			it.ID, it.Nombre, it.Categoria,
			it.Stock.InexactFloat64(), it.UM,
			it.UnitCost.InexactFloat64(),
			it.Stock.Mul(it.UnitCost).InexactFloat64(),
			it.SupplierID,
		}
		if err := f.SetSheetRow(SheetInventario, cell(i+2), &r); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	return write(f)
}

// ExpensesXLSX hoja de gastos (uno por fila) y hoja de líneas con el id del gasto.
func (e *Exporter) ExpensesXLSX(_ context.Context, expenses []entity.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetGastos); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}
	if _, err := f.NewSheet(SheetLineas); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}

	header := []any{"ID", "Fecha", "Proveedor", "Líneas", "Total"}
	if err := f.SetSheetRow(SheetGastos, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	lineHeader := []any{"Gasto", "Descripción", "Cantidad", "Precio", "Inventario"}
	if err := f.SetSheetRow(SheetLineas, "A1", &lineHeader); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	n := 2
	for i, g := range expenses {
		r := []any{g.ID, g.Fecha.Format("2006-01-02 15:04"), g.Proveedor, len(g.Items), g.Total.InexactFloat64()}
		if err := f.SetSheetRow(SheetGastos, cell(i+2), &r); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
		for _, it := range g.Items {
			l := []any{g.ID, it.Descripcion, it.Cantidad.InexactFloat64(), it.Precio.InexactFloat64(), it.InventoryID}
			if err := f.SetSheetRow(SheetLineas, cell(n), &l); err != nil {
				return nil, fmt.Errorf("xlsx: línea %d: %w", n, err)
			}
			n++
		}
	}
	return write(f)
}

func cell(row int) string { return fmt.Sprintf("A%d", row) }

func write(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
