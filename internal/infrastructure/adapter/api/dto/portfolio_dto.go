package dto

import (
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

// PortfolioLineResponse is one holding row
type PortfolioLineResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Shares int64  `json:"shares"`
	Price  string `json:"price"`
	Total  string `json:"total"`
	Stale  bool   `json:"stale"`
}

// PortfolioResponse is the portfolio view
type PortfolioResponse struct {
	Username   string                  `json:"username"`
	Holdings   []PortfolioLineResponse `json:"holdings"`
	Cash       string                  `json:"cash"`
	GrandTotal string                  `json:"grandTotal"`
}

// NewPortfolioResponse converts a valued portfolio
func NewPortfolioResponse(p *entity.Portfolio) PortfolioResponse {
	resp := PortfolioResponse{
		Username:   p.Username,
		Holdings:   make([]PortfolioLineResponse, 0, len(p.Lines)),
		Cash:       entity.FormatAmount(p.Cash),
		GrandTotal: entity.FormatAmount(p.GrandTotal),
	}
	for _, line := range p.Lines {
		resp.Holdings = append(resp.Holdings, PortfolioLineResponse{
			Symbol: line.Symbol,
			Name:   line.Name,
			Shares: line.Shares,
			Price:  entity.FormatAmount(line.Price),
			Total:  entity.FormatAmount(line.Total),
			Stale:  line.Stale,
		})
	}
	return resp
}

// QuoteResponse is a resolved quote
type QuoteResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// NewQuoteResponse converts a quote
func NewQuoteResponse(q *entity.Quote) QuoteResponse {
	return QuoteResponse{
		Symbol: q.Symbol,
		Name:   q.Name,
		Price:  entity.FormatAmount(q.Price),
	}
}

// TradeResponse is the receipt of an executed buy or sell
type TradeResponse struct {
	Action    string `json:"action"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Shares    int64  `json:"shares"`
	Price     string `json:"price"`
	Total     string `json:"total"`
	CashAfter string `json:"cashAfter"`
	Date      string `json:"date"`
}

// NewTradeResponse converts a trade receipt
func NewTradeResponse(r *entity.TradeReceipt) TradeResponse {
	return TradeResponse{
		Action:    string(r.Action),
		Symbol:    r.Symbol,
		Name:      r.Name,
		Shares:    r.Shares,
		Price:     entity.FormatAmount(r.Price),
		Total:     entity.FormatAmount(r.Total),
		CashAfter: entity.FormatAmount(r.CashAfter),
		Date:      entity.FormatDate(r.ExecutedAt),
	}
}

// HistoryEntryResponse is one history row
type HistoryEntryResponse struct {
	Action string `json:"action"`
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
	Price  string `json:"price"`
	Date   string `json:"date"`
}

// NewHistoryResponse converts history entries, keeping their order
func NewHistoryResponse(entries []entity.HistoryEntry) []HistoryEntryResponse {
	resp := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, HistoryEntryResponse{
			Action: string(e.Action),
			Symbol: e.Symbol,
			Shares: e.Shares,
			Price:  entity.FormatAmount(e.Price),
			Date:   entity.FormatDate(e.Date),
		})
	}
	return resp
}

// UserResponse identifies the logged in user
type UserResponse struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
}
