package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/gateway"
)

const (
	sheetName   = "History"
	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []string{"Date", "Action", "Symbol", "Shares", "Price", "Total"}

// XLSXGenerator renders a user's history as a spreadsheet
type XLSXGenerator struct {
	logger coreport.Logger
}

var _ gateway.HistoryReportGenerator = (*XLSXGenerator)(nil)

// NewXLSXGenerator creates a spreadsheet generator
func NewXLSXGenerator(logger coreport.Logger) *XLSXGenerator {
	return &XLSXGenerator{logger: logger}
}

// Generate writes one row per history entry, newest first as given
func (g *XLSXGenerator) Generate(ctx context.Context, username string, entries []entity.HistoryEntry) ([]byte, string, string, error) {
	requestID := coreport.RequestIDFromContext(ctx)
	g.logger.Debug("Generate start", map[string]any{
		"request_id": requestID,
		"entries":    len(entries),
	})

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.Error("got error while closing file", map[string]any{
				"request_id": requestID,
				"error":      err.Error(),
			})
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", "", err
	}
	if err := g.fillSheet(f, username, entries); err != nil {
		return nil, "", "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		g.logger.Error("got error while saving file to buffer", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, "", "", err
	}

	g.logger.Debug("Generate completed", map[string]any{
		"request_id": requestID,
		"bytes":      buf.Len(),
	})
	return buf.Bytes(), ".xlsx", contentType, nil
}

func (g *XLSXGenerator) fillSheet(f *excelize.File, username string, entries []entity.HistoryEntry) error {
	if err := f.MergeCell(sheetName, "A1", "F1"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "A1", fmt.Sprintf("Transaction history: %s", username)); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	moneyFormat := "$#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheetName, "A1", "F1", titleStyle); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A2", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A2", "F2", headerStyle); err != nil {
		return err
	}

	for i, entry := range entries {
		row := i + 3
		price, _ := entry.Price.Float64()
		total, _ := entry.Total().Float64()
		values := []interface{}{
			entity.FormatDate(entry.Date),
			string(entry.Action),
			entry.Symbol,
			entry.Shares,
			price,
			total,
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
	}

	if len(entries) > 0 {
		last := len(entries) + 2
		if err := f.SetCellStyle(sheetName, "E3", fmt.Sprintf("F%d", last), moneyStyle); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetName, "A", "A", 22)
}
