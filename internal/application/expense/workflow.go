// Package expense orquesta la captura de gastos a partir de la foto de un ticket:
// OCR, vinculación de líneas con inventario, registro del gasto y actualización
// del historial de costos.
package expense

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/inventory"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

// Estados del flujo.
const (
	StateIdle       = "idle"
	StateProcesando = "procesando"
	StateExtraido   = "extraido"
	StateError      = "error"
)

const (
	// Prompt instrucción fija que acompaña a la imagen.
	Prompt = "Analiza la imagen de este ticket. Extrae cada línea de producto como un objeto JSON con 'descripcion', 'cantidad' y 'precio'. Devuelve un array de estos objetos. No incluyas impuestos, subtotales o totales."
	// FallbackError mensaje cuando el servicio no dio uno.
	FallbackError = "No se pudo procesar la imagen. Intenta de nuevo."
	// SupplierLabel proveedor con el que se registran los gastos capturados.
	SupplierLabel = "Proveedor General"

	defaultTimeout = 30 * time.Second
)

// Item línea extraída, editable hasta guardar.
type Item struct {
	ID          string
	Descripcion string
	Cantidad    decimal.Decimal
	Precio      decimal.Decimal
	InventoryID string
}

// Snapshot estado observable del flujo.
type Snapshot struct {
	State string
	Error string
	Items []Item
}

// Deps dependencias del flujo.
type Deps struct {
	Extractor ports.TicketExtractor
	Inventory repository.InventoryStore
	Expenses  repository.ExpenseStore
	Observer  ports.OCRObserver
	Log       *logger.Logger
	Timeout   time.Duration
	Now       func() time.Time
	NewID     func() string
	Source    string // etiqueta de métricas: direct | remote
}

// Workflow una captura en curso. Vive lo que vive su tarjeta: Close cancela
// la llamada de OCR pendiente y descarta su resultado.
type Workflow struct {
	d Deps

	mu     sync.Mutex
	state  string
	errMsg string
	items  []Item
	gen    uint64
	cancel context.CancelFunc
	closed bool

	life context.Context
	stop context.CancelFunc
}

// NewWorkflow crea un flujo en idle.
func NewWorkflow(d Deps) *Workflow {
	if d.Timeout <= 0 {
		d.Timeout = defaultTimeout
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = func() string { return "gasto-item-" + uuid.NewString() }
	}
	if d.Observer == nil {
		d.Observer = ports.NopOCRObserver{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	life, stop := context.WithCancel(context.Background())
	return &Workflow{d: d, state: StateIdle, life: life, stop: stop}
}

// SelectImage descarta lo extraído, pasa a procesando y llama al OCR. Si mientras
// tanto llega otra imagen o se cierra el flujo, el resultado se descarta con
// domain.ErrStaleResult.
func (w *Workflow) SelectImage(ctx context.Context, img dto.OCRImage) (Snapshot, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return Snapshot{}, domain.ErrStaleResult
	}
	if w.cancel != nil {
		w.cancel()
	}
	w.gen++
	gen := w.gen
	w.items = nil
	w.errMsg = ""
	w.state = StateProcesando
	attempt, cancel := context.WithTimeout(w.life, w.d.Timeout)
	w.cancel = cancel
	w.mu.Unlock()

	release := context.AfterFunc(ctx, cancel)
	start := time.Now()
	extracted, err := w.d.Extractor.ExtractItems(attempt, img, Prompt)
	release()
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || gen != w.gen {
		w.d.Observer.ObserveOCR(w.d.Source, "descartado")
		w.d.Log.Debug().Uint64("intento", gen).Msg("resultado de OCR descartado")
		return w.snapshotLocked(), domain.ErrStaleResult
	}
	w.cancel = nil

	if err != nil {
		w.state = StateError
		w.errMsg = userMessage(err)
		w.d.Observer.ObserveOCR(w.d.Source, "error")
		w.d.Log.Warn().Err(err).Dur("duracion", time.Since(start)).Msg("OCR del ticket falló")
		return w.snapshotLocked(), nil
	}

	items := make([]Item, 0, len(extracted))
	for _, it := range extracted {
		items = append(items, Item{
			ID:          w.d.NewID(),
			Descripcion: it.Descripcion,
			Cantidad:    decimal.NewFromFloat(it.Cantidad),
			Precio:      decimal.NewFromFloat(it.Precio),
		})
	}
	w.items = items
	w.state = StateExtraido
	w.d.Observer.ObserveOCR(w.d.Source, "ok")
	w.d.Log.Info().Int("items", len(items)).Dur("duracion", time.Since(start)).Msg("ticket procesado")
	return w.snapshotLocked(), nil
}

func userMessage(err error) string {
	var um *domain.UserMessageError
	if errors.As(err, &um) && um.Message != "" {
		return um.Message
	}
	return FallbackError
}

// Link vincula una línea con un artículo de inventario; volver a vincular
// reemplaza el vínculo anterior.
func (w *Workflow) Link(itemID, inventoryID string) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateExtraido {
		return w.snapshotLocked(), fmt.Errorf("vincular en estado %s: %w", w.state, domain.ErrConflict)
	}
	i := slices.IndexFunc(w.items, func(it Item) bool { return it.ID == itemID })
	if i < 0 {
		return w.snapshotLocked(), fmt.Errorf("línea %s: %w", itemID, domain.ErrNotFound)
	}
	if _, ok := w.d.Inventory.InventoryItem(inventoryID); !ok {
		return w.snapshotLocked(), fmt.Errorf("artículo %s: %w", inventoryID, domain.ErrNotFound)
	}
	items := slices.Clone(w.items)
	items[i].InventoryID = inventoryID
	w.items = items
	return w.snapshotLocked(), nil
}

// SearchInventory candidatos para el modal de vinculación.
func (w *Workflow) SearchInventory(term string) []entity.InventoryItem {
	return inventory.Search(w.d.Inventory.Inventory(), term)
}

// Save registra el gasto y actualiza el costo de cada artículo vinculado.
// El total es la suma de precios; la cantidad solo interviene en el costo unitario.
func (w *Workflow) Save(ctx context.Context) (entity.Expense, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return entity.Expense{}, domain.ErrStaleResult
	}
	if w.state == StateProcesando {
		return entity.Expense{}, fmt.Errorf("guardar mientras se procesa el ticket: %w", domain.ErrConflict)
	}
	if err := ctx.Err(); err != nil {
		return entity.Expense{}, err
	}

	exp := entity.Expense{
		ID:        "gasto-" + uuid.NewString(),
		Fecha:     w.d.Now(),
		Proveedor: SupplierLabel,
		Items:     make([]entity.ExpenseItem, 0, len(w.items)),
		Total:     decimal.Zero,
	}
	for _, it := range w.items {
		exp.Total = exp.Total.Add(it.Precio)
		exp.Items = append(exp.Items, entity.ExpenseItem{
			ID:          it.ID,
			Descripcion: it.Descripcion,
			Cantidad:    it.Cantidad,
			Precio:      it.Precio,
			InventoryID: it.InventoryID,
		})
	}
	w.d.Expenses.AddExpense(exp)

	for _, it := range exp.Items {
		if !it.Linked() {
			continue
		}
		if it.Cantidad.IsZero() {
			w.d.Log.Warn().Str("gasto_id", exp.ID).Str("inventario_id", it.InventoryID).Msg("cantidad 0: no se actualiza el costo")
			continue
		}
		_, err := w.d.Inventory.DispatchInventory(inventory.UpdateCost{
			ItemID:    it.InventoryID,
			NewCost:   it.Precio.Div(it.Cantidad),
			ExpenseID: exp.ID,
			At:        exp.Fecha,
		})
		if err != nil {
			return exp, fmt.Errorf("actualizar costo de %s: %w", it.InventoryID, err)
		}
	}

	w.state = StateIdle
	w.errMsg = ""
	w.items = nil
	return exp, nil
}

// Snapshot estado actual.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Workflow) snapshotLocked() Snapshot {
	return Snapshot{State: w.state, Error: w.errMsg, Items: slices.Clone(w.items)}
}

// Close termina el flujo y cancela el OCR en curso.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.stop()
}
