package entity

// Supplier proveedor (solo lectura en esta versión).
type Supplier struct {
	ID        int
	Nombre    string
	Contacto  string
	Telefono  string
	Categoria string
}
