package views

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/polkiloo/wasul/internal/domain/model"
)

//go:embed templates/*.html
var files embed.FS

const (
	OverviewTemplate  = "index.html"
	DashboardTemplate = "admin.html"
	InvoicesTemplate  = "invoices.html"
)

// OverviewPage feeds the landing page.
type OverviewPage struct {
	Stats    *model.Stats
	Currency string
	Rate     float64
}

// DashboardPage feeds the admin dashboard.
type DashboardPage struct {
	Addresses []model.Address
	Partners  []model.PartnerUsage
	Currency  string
}

// InvoicesPage feeds the invoice table.
type InvoicesPage struct {
	Invoices []model.Invoice
}

// Templates parses every embedded page.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html"))
}

// Funcs returns helpers available to page templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(amount float64, currency string) string {
			return fmt.Sprintf("%.2f %s", amount, currency)
		},
		"optional": func(value *string, fallback string) string {
			if value == nil || *value == "" {
				return fallback
			}
			return *value
		},
		"date": func(v any) string {
			switch t := v.(type) {
			case interface{ Format(string) string }:
				return t.Format("2006-01-02 15:04")
			default:
				return ""
			}
		},
	}
}
