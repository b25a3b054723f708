package dto

// OCRImage imagen de ticket tal como llega en el multipart.
type OCRImage struct {
	Data     []byte
	MIMEType string
	Filename string
}

// OCRItem línea de producto extraída de un ticket.
type OCRItem struct {
	Descripcion string  `json:"descripcion"`
	Cantidad    float64 `json:"cantidad"`
	Precio      float64 `json:"precio"`
}
