package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/dto"
)

// PortfolioHandler handles the authenticated pages
type PortfolioHandler struct {
	portfolio usecase.PortfolioUseCase
	ledger    usecase.LedgerUseCase
	logger    coreport.Logger
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(
	portfolio usecase.PortfolioUseCase,
	ledger usecase.LedgerUseCase,
	logger coreport.Logger,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolio: portfolio,
		ledger:    ledger,
		logger:    logger,
	}
}

// Index handles GET /
func (h *PortfolioHandler) Index(c *gin.Context) {
	p, err := h.portfolio.Portfolio(c.Request.Context(), currentUser(c))
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	render(c, http.StatusOK, "index.html", "Portfolio", gin.H{"Portfolio": p}, dto.NewPortfolioResponse(p))
}

// QuoteForm handles GET /quote
func (h *PortfolioHandler) QuoteForm(c *gin.Context) {
	render(c, http.StatusOK, "quote.html", "Quote", nil, gin.H{"fields": []string{"symbol"}})
}

// Quote handles POST /quote
func (h *PortfolioHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		Apologize(c, h.logger, domainerr.MissingField("symbol"))
		return
	}

	quote, err := h.portfolio.Quote(c.Request.Context(), req.Symbol)
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	render(c, http.StatusOK, "quoted.html", "Quoted", gin.H{"Quote": quote}, dto.NewQuoteResponse(quote))
}

// BuyForm handles GET /buy
func (h *PortfolioHandler) BuyForm(c *gin.Context) {
	render(c, http.StatusOK, "buy.html", "Buy", nil, gin.H{"fields": []string{"symbol", "shares"}})
}

// Buy handles POST /buy
func (h *PortfolioHandler) Buy(c *gin.Context) {
	symbol, shares, ok := h.bindTrade(c)
	if !ok {
		return
	}

	receipt, err := h.ledger.Buy(c.Request.Context(), currentUser(c), symbol, shares)
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	done(c, dto.NewTradeResponse(receipt))
}

// SellForm handles GET /sell. Only owned symbols are offered.
func (h *PortfolioHandler) SellForm(c *gin.Context) {
	symbols, err := h.portfolio.OwnedSymbols(c.Request.Context(), currentUser(c))
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	render(c, http.StatusOK, "sell.html", "Sell", gin.H{"Symbols": symbols}, gin.H{"symbols": symbols})
}

// Sell handles POST /sell
func (h *PortfolioHandler) Sell(c *gin.Context) {
	symbol, shares, ok := h.bindTrade(c)
	if !ok {
		return
	}

	receipt, err := h.ledger.Sell(c.Request.Context(), currentUser(c), symbol, shares)
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	done(c, dto.NewTradeResponse(receipt))
}

// History handles GET /history
func (h *PortfolioHandler) History(c *gin.Context) {
	entries, err := h.portfolio.History(c.Request.Context(), currentUser(c))
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	render(c, http.StatusOK, "history.html", "History", gin.H{"Entries": entries}, dto.NewHistoryResponse(entries))
}

// ExportHistory handles GET /history/export
func (h *PortfolioHandler) ExportHistory(c *gin.Context) {
	report, err := h.portfolio.ExportHistory(c.Request.Context(), currentUser(c))
	if err != nil {
		Apologize(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(report.Filename))
	c.Data(http.StatusOK, report.ContentType, report.Content)
}

// bindTrade reads the trade form. The symbol is validated by the ledger.
func (h *PortfolioHandler) bindTrade(c *gin.Context) (string, int64, bool) {
	var req dto.TradeRequest
	if err := c.ShouldBind(&req); err != nil {
		Apologize(c, h.logger, domainerr.NewValidationError("shares", domainerr.ErrInvalidShares))
		return "", 0, false
	}

	if req.Symbol == "" {
		Apologize(c, h.logger, domainerr.MissingField("symbol"))
		return "", 0, false
	}

	shares, err := entity.ParseShareCount(req.Shares.String())
	if err != nil {
		Apologize(c, h.logger, err)
		return "", 0, false
	}

	return req.Symbol, shares, true
}
