package wehttp

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/weegigs/wee-counter-go/counter"
)

var page = template.Must(template.New("counter").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Counter</title>
</head>
<body>
<div class="app">
<h1 id="counter">{{.Label}}</h1>
<div class="button-container">
<form method="post" action="/ui/increment"><button type="submit">+</button></form>
<form method="post" action="/ui/decrement"><button type="submit">-</button></form>
<form method="post" action="/ui/reset"><button type="submit">Reset</button></form>
</div>
</div>
</body>
</html>
`))

func (service *httpService) page() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.controller.Current(r.Context())
		if err != nil {
			service.log.Info().Err(err).Msg("failed to load counter")
			http.Error(w, "failed to load counter", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := page.Execute(w, view); err != nil {
			service.log.Warn().Err(err).Msg("failed to render page")
		}
	}
}

// pageCommand applies a button press and sends the browser back to the page.
func (service *httpService) pageCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		command, err := counter.Parse(chi.URLParam(r, "command"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if _, err := service.controller.Execute(r.Context(), command); err != nil {
			status := statusOf(err)
			service.log.Info().Err(err).Int("status", status).Msg("failed to execute command")
			http.Error(w, http.StatusText(status), status)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
