package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/gateway"
)

// quoteResponse is the body of GET /stock/{symbol}/quote
type quoteResponse struct {
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"companyName"`
	LatestPrice decimal.Decimal `json:"latestPrice"`
}

// HTTPProvider resolves quotes from an IEX-style HTTP API
type HTTPProvider struct {
	client *resty.Client
	apiKey string
	logger coreport.Logger
}

var _ gateway.QuoteProvider = (*HTTPProvider)(nil)

// NewHTTPProvider creates a provider for baseURL
func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration, logger coreport.Logger) *HTTPProvider {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPProvider{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}
}

// Lookup fetches the latest price of symbol. Unknown symbols resolve to None.
func (p *HTTPProvider) Lookup(ctx context.Context, symbol string) (entity.QuoteResult, error) {
	requestID := coreport.RequestIDFromContext(ctx)
	p.logger.Debug("start quote request", map[string]any{
		"symbol":     symbol,
		"request_id": requestID,
	})

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParam("token", p.apiKey).
		Get("/stock/{symbol}/quote")
	if err != nil {
		p.logger.Error("error while dialing quote API", map[string]any{
			"symbol":     symbol,
			"request_id": requestID,
			"error":      err.Error(),
		})
		return entity.NoQuote(), fmt.Errorf("%w: %v", errs.ErrQuoteUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return entity.NoQuote(), nil
	case resp.StatusCode() != http.StatusOK:
		p.logger.Warn("quote API returned unexpected status", map[string]any{
			"symbol":     symbol,
			"request_id": requestID,
			"status":     resp.StatusCode(),
		})
		return entity.NoQuote(), fmt.Errorf("%w: status %d", errs.ErrQuoteUnavailable, resp.StatusCode())
	}

	var body quoteResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		p.logger.Error("can't unmarshal quote response", map[string]any{
			"symbol":     symbol,
			"request_id": requestID,
			"error":      err.Error(),
		})
		return entity.NoQuote(), fmt.Errorf("%w: malformed response", errs.ErrQuoteUnavailable)
	}

	if body.Symbol == "" || !body.LatestPrice.IsPositive() {
		return entity.NoQuote(), nil
	}

	return entity.SomeQuote(entity.Quote{
		Symbol: body.Symbol,
		Name:   body.CompanyName,
		Price:  body.LatestPrice.Round(entity.PricePlaces),
	}), nil
}
