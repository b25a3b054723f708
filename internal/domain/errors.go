package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrActionNotImplemented lo devuelven los reducers para variantes reconocidas
	// pero sin lógica; el store lo registra como advertencia y no lo propaga.
	ErrActionNotImplemented = errors.New("acción no implementada")

	// ErrOCRFormat la respuesta del modelo no tiene la forma [{descripcion, cantidad, precio}].
	ErrOCRFormat = errors.New("respuesta de OCR con formato inválido")
	// ErrOCRUnavailable el proveedor de IA no está configurado.
	ErrOCRUnavailable = errors.New("servicio de OCR no configurado")

	// ErrCameraUnavailable la foto de entrada falta o no se pudo decodificar.
	ErrCameraUnavailable = errors.New("se requiere una foto válida de la cámara para registrar la entrada")

	// ErrStaleResult el resultado llegó para un intento ya descartado (vista cerrada o reemplazada).
	ErrStaleResult = errors.New("resultado descartado: la captura ya no está activa")
)

// UserMessageError error de un servicio externo que trae un mensaje presentable
// al usuario (p. ej. el campo "error" de /api/ocr).
type UserMessageError struct {
	Message string
	Err     error
}

func (e *UserMessageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UserMessageError) Unwrap() error { return e.Err }
