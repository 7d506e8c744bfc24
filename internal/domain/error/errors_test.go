package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingField", ErrMissingField, 4001},
		{"InvalidShares", ErrInvalidShares, 4002},
		{"PasswordMismatch", ErrPasswordMismatch, 4003},
		{"InsufficientFunds", ErrInsufficientFunds, 4101},
		{"InsufficientShares", ErrInsufficientShares, 4102},
		{"SymbolNotOwned", ErrSymbolNotOwned, 4103},
		{"UnknownSymbol", ErrUnknownSymbol, 4104},
		{"InvalidCredentials", ErrInvalidCredentials, 4201},
		{"UsernameTaken", ErrUsernameTaken, 4202},
		{"Unauthenticated", ErrUnauthenticated, 4203},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"ConcurrentUpdate", ErrConcurrentUpdate, 4090},
		{"DuplicateKey", ErrDuplicateKey, 4091},
		{"QuoteUnavailable", ErrQuoteUnavailable, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnknownSymbol), 4104},
		{"ValidationError", MissingField("symbol"), 4001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		err      error
		expected Kind
	}{
		{MissingField("username"), KindValidation},
		{NewInsufficientFundsError(1, "AAPL", "100.00", "10.00"), KindBusinessRule},
		{NewInsufficientSharesError(1, "AAPL", 5, 2), KindBusinessRule},
		{ErrUsernameTaken, KindAuth},
		{ErrSessionNotFound, KindUnauthenticated},
		{ErrConcurrentUpdate, KindConflict},
		{fmt.Errorf("lookup: %w", ErrQuoteUnavailable), KindUnavailable},
		{ErrDatabaseConnection, KindInternal},
	}

	for _, tc := range testCases {
		if got := KindOf(tc.err); got != tc.expected {
			t.Errorf("KindOf(%v) = %s, want %s", tc.err, got, tc.expected)
		}
	}
}

func TestPublicMessage(t *testing.T) {
	if msg := PublicMessage(MissingField("symbol")); msg != "must provide symbol" {
		t.Errorf("unexpected message for missing field: %s", msg)
	}

	if msg := PublicMessage(NewInsufficientFundsError(7, "NFLX", "500.00", "20.00")); msg != "insufficient funds" {
		t.Errorf("unexpected message for insufficient funds: %s", msg)
	}

	storageErr := fmt.Errorf("%w: pq: duplicate key value violates unique constraint", ErrDatabaseConnection)
	if msg := PublicMessage(storageErr); msg != "something went wrong" {
		t.Errorf("storage details leaked: %s", msg)
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(123, "AAPL", "500.00", "100.00")

	expectedMsg := "insufficient funds for user 123 buying AAPL: required 500.00, available 100.00"
	if err.Error() != expectedMsg {
		t.Errorf("Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}

	fields := LogFields(err)
	if fields["error_code"] != CodeInsufficientFunds {
		t.Errorf("error_code = %v, want %d", fields["error_code"], CodeInsufficientFunds)
	}
	if fields["symbol"] != "AAPL" {
		t.Errorf("symbol = %v, want AAPL", fields["symbol"])
	}
}

func TestInsufficientSharesError(t *testing.T) {
	err := fmt.Errorf("sell rejected: %w", NewInsufficientSharesError(9, "MSFT", 11, 10))

	if !errors.Is(err, ErrInsufficientShares) {
		t.Errorf("errors.Is(err, ErrInsufficientShares) = false, want true")
	}

	var detailed *InsufficientSharesError
	if !errors.As(err, &detailed) {
		t.Fatalf("errors.As failed to extract InsufficientSharesError")
	}
	if detailed.Requested != 11 || detailed.Owned != 10 {
		t.Errorf("unexpected details: requested=%d owned=%d", detailed.Requested, detailed.Owned)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("shares", ErrInvalidShares)

	if err.Error() != "invalid shares: shares must be a positive integer" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, ErrInvalidShares) {
		t.Errorf("errors.Is(err, ErrInvalidShares) = false, want true")
	}

	fields := LogFields(err)
	if fields["field"] != "shares" {
		t.Errorf("field = %v, want shares", fields["field"])
	}
}

func TestLogFieldsFallback(t *testing.T) {
	fields := LogFields(errors.New("boom"))
	if fields["error"] != "boom" {
		t.Errorf("error = %v, want boom", fields["error"])
	}
	if fields["error_code"] != CodeInternalServer {
		t.Errorf("error_code = %v, want %d", fields["error_code"], CodeInternalServer)
	}
}
