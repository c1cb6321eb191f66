// Package openapi serves Swagger UI for the OpenAPI 3.1 document that Huma
// generates from the registered operations.
package openapi

import (
	"net/http"
	"strings"
	"text/template"

	"github.com/labstack/echo/v4"
)

var swaggerUI = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "{{.SpecURL}}",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`))

// RegisterRoutes adds Swagger UI under /swagger, reading the document
// served at specURL (Huma's "/openapi.json" by default).
func RegisterRoutes(e *echo.Echo, title, specURL string) {
	page := renderUI(title, specURL)

	e.GET("/swagger/index.html", func(c echo.Context) error {
		return c.HTML(http.StatusOK, page)
	})
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func renderUI(title, specURL string) string {
	var b strings.Builder
	// The template and its two string fields cannot fail to execute.
	_ = swaggerUI.Execute(&b, struct{ Title, SpecURL string }{title, specURL})
	return b.String()
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
