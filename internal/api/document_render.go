package api

import (
	"bytes"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/fleemy/internal/models"
)

type documentView struct {
	Kind       string
	Number     string
	IssuerName string
	ClientName string
	Title      string
	Items      []models.LineItem
	TaxRate    float64
	Subtotal   float64
	TaxAmount  float64
	Total      float64
	Status     string
	IssuedAt   time.Time
	Deadline   *time.Time
}

var documentTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"money": formatMoney,
	"date": func(value any) string {
		switch t := value.(type) {
		case time.Time:
			return t.Format("02/01/2006")
		case *time.Time:
			if t != nil {
				return t.Format("02/01/2006")
			}
		}
		return ""
	},
}).Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Kind}} {{.Number}}</title>
<style>
body { font-family: sans-serif; margin: 2.5rem; color: #222; }
h1 { font-size: 1.4rem; margin-bottom: 0; }
.meta { color: #666; margin-bottom: 2rem; }
table { width: 100%; border-collapse: collapse; margin: 1.5rem 0; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #ddd; }
td.amount, th.amount { text-align: right; }
.totals { margin-left: auto; width: 18rem; }
.totals td { border: none; padding: 0.2rem 0.6rem; }
.totals tr.grand td { font-weight: bold; border-top: 2px solid #222; }
</style>
</head>
<body>
<h1>{{.Kind}} {{.Number}}</h1>
<p class="meta">
{{.IssuerName}}{{if .ClientName}} pour {{.ClientName}}{{end}}<br>
Émis le {{date .IssuedAt}}{{if .Deadline}} · Échéance {{date .Deadline}}{{end}} · Statut : {{.Status}}
</p>
<h2>{{.Title}}</h2>
<table>
<thead>
<tr><th>Description</th><th class="amount">Quantité</th><th class="amount">Prix unitaire</th><th class="amount">Total</th></tr>
</thead>
<tbody>
{{range .Items}}
<tr><td>{{.Description}}</td><td class="amount">{{.Quantity}}</td><td class="amount">{{money .UnitPrice}}</td><td class="amount">{{money .Total}}</td></tr>
{{end}}
</tbody>
</table>
<table class="totals">
<tr><td>Sous-total</td><td class="amount">{{money .Subtotal}}</td></tr>
<tr><td>TVA ({{.TaxRate}}%)</td><td class="amount">{{money .TaxAmount}}</td></tr>
<tr class="grand"><td>Total</td><td class="amount">{{money .Total}}</td></tr>
</table>
</body>
</html>
`))

func (handler *Handler) renderDocument(c *fiber.Ctx, view documentView) error {
	var buffer bytes.Buffer
	if err := documentTemplate.Execute(&buffer, view); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to render document")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buffer.Bytes())
}
