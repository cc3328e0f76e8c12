// Package docs registers the embedded OpenAPI document with swag so that
// echo-swagger can serve it under /swagger/.
package docs

import (
	"github.com/lax56237/Daily-Drop/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo describes the registered document.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Daily Drop",
	Description:      "Cart, order placement, delivery assignment and delivery completion.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  string(api.OpenAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
