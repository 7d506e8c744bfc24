package dto

import "encoding/json"

// LoginRequest is the login form
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// RegisterRequest is the registration form
type RegisterRequest struct {
	Username     string `form:"username" json:"username"`
	Password     string `form:"password" json:"password"`
	Confirmation string `form:"confirmation" json:"confirmation"`
}

// QuoteRequest is the quote lookup form
type QuoteRequest struct {
	Symbol string `form:"symbol" json:"symbol"`
}

// TradeRequest is the buy and sell form. Shares stays raw text so that
// malformed counts surface as validation errors.
type TradeRequest struct {
	Symbol string      `form:"symbol" json:"symbol"`
	Shares json.Number `form:"shares" json:"shares"`
}
