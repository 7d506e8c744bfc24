package view

import (
	"embed"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap holds the helpers available to every page
var FuncMap = template.FuncMap{
	"usd": func(amount decimal.Decimal) string {
		return entity.FormatUSD(amount)
	},
	"date": func(t time.Time) string {
		return entity.FormatDate(t)
	},
}

// Load parses the embedded page templates. Each page is addressed by its file name.
func Load() (*template.Template, error) {
	return template.New("").Funcs(FuncMap).ParseFS(templateFS, "templates/*.html")
}
