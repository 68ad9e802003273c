package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps page content in the HTML shell: head, HTMX, app assets and
// the toast container.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>` + templ.EscapeString(title) + `</title>
<link rel="stylesheet" href="/static/app.css"/>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
<div id="toast-container"></div>
<main class="container">
`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		foot := `
</main>
<script src="/static/app.js"></script>
</body>
</html>`
		_, err := io.WriteString(w, foot)
		return err
	})
}
