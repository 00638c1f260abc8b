package apidocs

import (
	"bytes"
	"fmt"
	"github.com/labstack/echo/v4"
	"html/template"
	"net/http"
	"path"
)

// configures the Doc middleware
type config struct {
	// SpecURL the url to find the spec for
	SpecURL string
	// DocPath the url of the html viewer
	DocPath string
}

func prepare(cfg *config) string {
	tmpl := template.Must(template.New("apidoc").Parse(pageTemplate))
	buf := bytes.NewBuffer(nil)
	_ = tmpl.Execute(buf, cfg)
	return buf.String()
}

// Doc creates a middleware that serves the OpenAPI document at basePath/apispec.json
// and a viewer for it at basePath/apidocs. basePath itself redirects to the viewer.
func Doc(basePath string, apiJSON []byte) echo.MiddlewareFunc {
	cfg := &config{
		SpecURL: path.Join(basePath, "apispec.json"),
		DocPath: path.Join(basePath, "apidocs"),
	}

	uiHTML := prepare(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().URL.Path {
			case cfg.DocPath:
				return c.HTML(http.StatusOK, uiHTML)
			case cfg.SpecURL:
				return c.JSONBlob(http.StatusOK, apiJSON)
			case basePath, basePath + "/":
				return c.Redirect(http.StatusFound, cfg.DocPath)
			}

			if next == nil {
				return c.String(http.StatusNotFound, fmt.Sprintf("%q not found", c.Request().URL.Path))
			}

			return next(c)
		}
	}
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>Seed inventory API</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
