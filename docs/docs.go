// Package docs documento OpenAPI de la API, servido por Swagger UI.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var docTemplate string

// SwaggerInfo metadatos del documento.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Nyx OS API",
	Description:      "Back-office de Nyx OS.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// JSON documento tal como se sirve.
func JSON() []byte { return []byte(SwaggerInfo.ReadDoc()) }

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
