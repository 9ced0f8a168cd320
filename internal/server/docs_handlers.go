package server

import (
	"os"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v3"
)

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <title>Ripple API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/openapi.json",
      dom_id: "#swagger-ui",
    });
  </script>
</body>
</html>`

// SwaggerUI handles GET /docs
func (s *Server) SwaggerUI(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(swaggerUIPage)
}

// OpenAPIYAML handles GET /openapi.yaml, serving the contract file verbatim.
func (s *Server) OpenAPIYAML(c *fiber.Ctx) error {
	doc, err := os.ReadFile(s.config.OpenAPIPath)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(doc)
}

// OpenAPIJSON handles GET /openapi.json, the YAML contract converted on the fly.
func (s *Server) OpenAPIJSON(c *fiber.Ctx) error {
	doc, err := os.ReadFile(s.config.OpenAPIPath)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	var spec map[string]interface{}
	if err := yaml.Unmarshal(doc, &spec); err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	return c.JSON(spec)
}
