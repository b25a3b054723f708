// Package apps conecta cada app del dock con el caso de uso que arma su vista.
package apps

import (
	"context"

	"github.com/jhoicas/nyx-os/internal/application/checkin"
	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/expense"
	"github.com/jhoicas/nyx-os/internal/application/inventory"
	"github.com/jhoicas/nyx-os/internal/application/shell"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
)

// Tipos de vista propios de cada módulo.
const (
	KindLauncher   = "launcher"
	KindCapture    = "captura"
	KindInventory  = "inventario"
	KindMenu       = "menu"
	KindCheckIn    = "checkIn"
	KindSync       = "sincronizacion"
	LoadingCheckIn = "Cargando empleado..."
)

// CaptureSource entrega el flujo de captura de una tarjeta de gastos.
// Lo implementa session.Manager.
type CaptureSource interface {
	CaptureFor(userID, cardID string) (*expense.Workflow, error)
}

// Deps casos de uso que alimentan las vistas.
type Deps struct {
	Captures  CaptureSource
	Inventory *inventory.UseCase
	Items     repository.InventoryStore
	Menu      *usecase.MenuUseCase
	Sync      *usecase.SyncUseCase
	CheckIn   *checkin.Service
}

// NewRegistry registro con los bindings de todos los módulos con lógica. El
// resto de apps conocidas queda como placeholder.
func NewRegistry(d Deps) *shell.Registry {
	return shell.NewRegistry().
		Bind(shell.LauncherID, launcher).
		Bind("gastos", capture(d.Captures, d.Items)).
		Bind("inventario", func(context.Context, shell.RenderContext) (shell.View, error) {
			return shell.View{Kind: KindInventory, Title: "Inventario", Data: d.Inventory.Valuation()}, nil
		}).
		Bind("menu", func(context.Context, shell.RenderContext) (shell.View, error) {
			return shell.View{Kind: KindMenu, Title: "Menu", Data: d.Menu.Metrics()}, nil
		}).
		Bind("sincronizacion", func(context.Context, shell.RenderContext) (shell.View, error) {
			return shell.View{Kind: KindSync, Title: "Sincronizacion", Data: d.Sync.History()}, nil
		}).
		Bind("checkIn", checkIn(d.CheckIn))
}

// launcher lista las apps del rol de la sesión.
func launcher(_ context.Context, rc shell.RenderContext) (shell.View, error) {
	ids := shell.AppsForRole(rc.User.Role)
	entries := make([]dto.DockEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, dto.DockEntry{AppID: id, Title: shell.Title(id)})
	}
	return shell.View{Kind: KindLauncher, Title: shell.Title(shell.LauncherID), Data: entries}, nil
}

func capture(src CaptureSource, items repository.InventoryStore) shell.Binding {
	return func(_ context.Context, rc shell.RenderContext) (shell.View, error) {
		w, err := src.CaptureFor(rc.User.ID, rc.Card.ID)
		if err != nil {
			return shell.View{}, err
		}
		return shell.View{
			Kind:  KindCapture,
			Title: shell.Title(rc.Card.AppID),
			Data:  expense.ToCaptureResponse(w.Snapshot(), items),
		}, nil
	}
}

// checkIn la sesión debe ser de un empleado existente; si no, queda cargando.
func checkIn(svc *checkin.Service) shell.Binding {
	return func(_ context.Context, rc shell.RenderContext) (shell.View, error) {
		if rc.User.Role != entity.RoleEmpleado {
			return shell.Placeholder(rc.Card.AppID, LoadingCheckIn), nil
		}
		v, err := svc.View(rc.User.ID)
		if err != nil {
			return shell.Placeholder(rc.Card.AppID, LoadingCheckIn), nil
		}
		return shell.View{Kind: KindCheckIn, Title: shell.Title(rc.Card.AppID), Data: checkin.ToResponse(v)}, nil
	}
}
