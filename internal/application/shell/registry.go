package shell

import (
	"context"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

// LauncherID entrada fija del dock, independiente del rol.
const LauncherID = "apps"

// Apps por rol, en el orden del dock.
var roleApps = map[string][]string{
	entity.RoleAdmin:     {"empleados", "analiticas", "horarios", "inventario", "gastos", "menu"},
	entity.RoleEmpleado:  {"miHorario", "misTareas", "misFinanzas", "checkIn"},
	entity.RoleDeveloper: {"estado", "apiLogs", "sincronizacion"},
}

// Contenido de los módulos que aún no tienen lógica.
var placeholders = map[string]string{
	"empleados":   "Admin Empleados Content",
	"analiticas":  "Admin Analiticas Content",
	"horarios":    "Admin Horarios Content",
	"miHorario":   "Empleado Mi Horario Content",
	"misTareas":   "Empleado Mis Tareas Content",
	"misFinanzas": "Empleado Mis Finanzas Content",
	"estado":      "Dev Estado Content",
	"apiLogs":     "Dev API Logs Content",
}

// AppsForRole apps del rol; vacío para roles desconocidos.
func AppsForRole(role string) []string {
	return slices.Clone(roleApps[role])
}

// Dock lanzador seguido de las apps del rol.
func Dock(role string) []string {
	return append([]string{LauncherID}, roleApps[role]...)
}

// Known informa si appID es una app del catálogo.
func Known(appID string) bool {
	if appID == LauncherID {
		return true
	}
	for _, apps := range roleApps {
		if slices.Contains(apps, appID) {
			return true
		}
	}
	return false
}

// Allowed informa si el rol puede abrir appID. Los ids desconocidos se permiten
// y se renderizan como "App not found".
func Allowed(role, appID string) bool {
	if appID == LauncherID || !Known(appID) {
		return true
	}
	return slices.Contains(roleApps[role], appID)
}

// Title título de tarjeta: el app id con la primera letra en mayúscula.
func Title(appID string) string {
	r, size := utf8.DecodeRuneInString(appID)
	if r == utf8.RuneError {
		return appID
	}
	return string(unicode.ToUpper(r)) + appID[size:]
}

// Tipos de vista genéricos.
const (
	KindNotFound    = "notFound"
	KindPlaceholder = "placeholder"
)

// View contenido renderizado de una tarjeta.
type View struct {
	Kind    string
	Title   string
	Message string
	Data    any
}

// NotFound vista de app desconocida.
func NotFound(appID string) View {
	return View{Kind: KindNotFound, Title: Title(appID), Message: "App not found"}
}

// Placeholder vista de módulo sin lógica.
func Placeholder(appID, message string) View {
	return View{Kind: KindPlaceholder, Title: Title(appID), Message: message}
}

// RenderContext datos con los que se resuelve una tarjeta.
type RenderContext struct {
	User entity.User
	Card Card
}

// Binding construye la vista de una app a partir del store.
type Binding func(ctx context.Context, rc RenderContext) (View, error)

// Registry app id -> binding. Se arma al inicio y luego solo se lee.
type Registry struct {
	bindings map[string]Binding
}

// NewRegistry crea un registro sin bindings.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]Binding)}
}

// Bind asocia un binding a appID.
func (r *Registry) Bind(appID string, b Binding) *Registry {
	r.bindings[appID] = b
	return r
}

// Render resuelve la vista de la tarjeta. Nunca falla por un app id desconocido.
func (r *Registry) Render(ctx context.Context, rc RenderContext) (View, error) {
	appID := rc.Card.AppID
	if b, ok := r.bindings[appID]; ok {
		return b(ctx, rc)
	}
	if msg, ok := placeholders[appID]; ok {
		return Placeholder(appID, msg), nil
	}
	if Known(appID) {
		return Placeholder(appID, Title(appID)), nil
	}
	return NotFound(appID), nil
}
