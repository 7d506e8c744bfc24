package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/time"
	mocksecurity "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/security"
	mockusecase "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/usecase"
)

const (
	cookieName = "session"
	userToken  = "signed-token"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Ping(context.Context) error {
	return f.err
}

type testServer struct {
	router    *gin.Engine
	accounts  *mockusecase.MockAccountUseCase
	portfolio *mockusecase.MockPortfolioUseCase
	ledger    *mockusecase.MockLedgerUseCase
	sessions  *mocksecurity.MockSessionManager
	checker   *fakeChecker
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		router:    gin.New(),
		accounts:  mockusecase.NewMockAccountUseCase(t),
		portfolio: mockusecase.NewMockPortfolioUseCase(t),
		ledger:    mockusecase.NewMockLedgerUseCase(t),
		sessions:  mocksecurity.NewMockSessionManager(t),
		checker:   &fakeChecker{},
	}

	log := logger.NewNoopLogger()
	require.NoError(t, SetupMiddlewares(s.router, log, timeadapter.NewRealTimeProvider()))

	cookie := handler.CookieConfig{Name: cookieName, TTL: time.Hour}
	SetupRoutes(s.router, Handlers{
		Auth:      handler.NewAuthHandler(s.accounts, s.sessions, cookie, log),
		Portfolio: handler.NewPortfolioHandler(s.portfolio, s.ledger, log),
		Health:    handler.NewHealthHandler(s.checker, log),
	}, s.sessions, cookie, log)

	return s
}

// loggedIn makes the session token resolve to userID
func (s *testServer) loggedIn(userID uint64) {
	s.sessions.EXPECT().Resolve(mock.Anything, userToken).
		Return(&security.Session{ID: "sid", UserID: userID}, nil).Maybe()
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func get(path string, withSession, wantJSON bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	decorate(req, withSession, wantJSON)
	return req
}

func postForm(path string, form url.Values, withSession, wantJSON bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	decorate(req, withSession, wantJSON)
	return req
}

func decorate(req *http.Request, withSession, wantJSON bool) {
	if withSession {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: userToken})
	}
	if wantJSON {
		req.Header.Set("Accept", "application/json")
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func sampleUser() *entity.User {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return entity.RestoreUser(7, "alice", "hash", decimal.RequireFromString("10000"), now, now)
}

func TestRoutes_PrivatePagesRequireSession(t *testing.T) {
	paths := []string{"/", "/quote", "/buy", "/sell", "/history", "/history/export"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(get(path, false, false))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, handler.LoginPath, rec.Header().Get("Location"))
		})
	}
}

func TestRoutes_RejectedSessionRedirectsAndClearsCookie(t *testing.T) {
	s := newTestServer(t)
	s.sessions.EXPECT().Resolve(mock.Anything, userToken).Return(nil, errs.ErrSessionNotFound)

	rec := s.do(get("/", true, false))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, handler.LoginPath, rec.Header().Get("Location"))
	cleared := findCookie(rec, cookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestRoutes_CommonHeaders(t *testing.T) {
	t.Run("should disable caching on every response", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(get("/login", false, false))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "0", rec.Header().Get("Expires"))
		assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
	})

	t.Run("should generate a request id", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(get("/login", false, false))

		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("should echo the caller's request id", func(t *testing.T) {
		s := newTestServer(t)
		req := get("/login", false, false)
		req.Header.Set(middleware.RequestIDHeader, "req-42")

		rec := s.do(req)

		assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRoutes_Login(t *testing.T) {
	form := url.Values{"username": {"alice"}, "password": {"secret"}}

	t.Run("should start a session and redirect home", func(t *testing.T) {
		s := newTestServer(t)
		s.accounts.EXPECT().Authenticate(mock.Anything, "alice", "secret").Return(sampleUser(), nil)
		s.sessions.EXPECT().Issue(mock.Anything, uint64(7)).Return(userToken, nil)

		rec := s.do(postForm("/login", form, false, false))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		issued := findCookie(rec, cookieName)
		require.NotNil(t, issued)
		assert.Equal(t, userToken, issued.Value)
		assert.True(t, issued.HttpOnly)
		assert.Equal(t, 3600, issued.MaxAge)
	})

	t.Run("should answer JSON clients with the user", func(t *testing.T) {
		s := newTestServer(t)
		s.accounts.EXPECT().Authenticate(mock.Anything, "alice", "secret").Return(sampleUser(), nil)
		s.sessions.EXPECT().Issue(mock.Anything, uint64(7)).Return(userToken, nil)

		rec := s.do(postForm("/login", form, false, true))

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, dto.UserResponse{UserID: 7, Username: "alice"}, body)
	})

	t.Run("should apologize with 403 on bad credentials", func(t *testing.T) {
		s := newTestServer(t)
		s.accounts.EXPECT().Authenticate(mock.Anything, "alice", "secret").Return(nil, errs.ErrInvalidCredentials)

		rec := s.do(postForm("/login", form, false, false))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid username and/or password")
		assert.Nil(t, findCookie(rec, cookieName))
	})

	t.Run("should require a username without calling the account service", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(postForm("/login", url.Values{"password": {"secret"}}, false, true))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, errs.CodeMissingField, body.Code)
		assert.Equal(t, "must provide username", body.Message)
	})

	t.Run("should end the previous session first", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.sessions.EXPECT().Revoke(mock.Anything, userToken).Return(nil)

		rec := s.do(get("/login", true, false))

		assert.Equal(t, http.StatusOK, rec.Code)
		cleared := findCookie(rec, cookieName)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
	})
}

func TestRoutes_Logout(t *testing.T) {
	s := newTestServer(t)
	s.loggedIn(7)
	s.sessions.EXPECT().Revoke(mock.Anything, userToken).Return(nil)

	rec := s.do(get("/logout", true, false))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cleared := findCookie(rec, cookieName)
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestRoutes_Register(t *testing.T) {
	form := url.Values{"username": {"bob"}, "password": {"pw"}, "confirmation": {"pw"}}

	t.Run("should log the new user in", func(t *testing.T) {
		s := newTestServer(t)
		now := time.Now()
		bob := entity.RestoreUser(8, "bob", "hash", decimal.RequireFromString("10000"), now, now)
		s.accounts.EXPECT().Register(mock.Anything, usecase.RegisterRequest{
			Username: "bob", Password: "pw", Confirmation: "pw",
		}).Return(bob, nil)
		s.sessions.EXPECT().Issue(mock.Anything, uint64(8)).Return(userToken, nil)

		rec := s.do(postForm("/register", form, false, false))

		assert.Equal(t, http.StatusFound, rec.Code)
		require.NotNil(t, findCookie(rec, cookieName))
	})

	t.Run("should apologize when the username is taken", func(t *testing.T) {
		s := newTestServer(t)
		s.accounts.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errs.ErrUsernameTaken)

		rec := s.do(postForm("/register", form, false, true))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, errs.CodeUsernameTaken, body.Code)
		assert.Equal(t, "username already exists", body.Message)
	})
}

func TestRoutes_Index(t *testing.T) {
	p := &entity.Portfolio{
		UserID:   7,
		Username: "alice",
		Lines: []entity.PortfolioLine{{
			Symbol: "NFLX",
			Name:   "Netflix, Inc.",
			Shares: 2,
			Price:  decimal.RequireFromString("250"),
			Total:  decimal.RequireFromString("500"),
			Stale:  true,
		}},
		Cash:       decimal.RequireFromString("9500"),
		GrandTotal: decimal.RequireFromString("10000"),
	}

	t.Run("should render the holdings table", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.portfolio.EXPECT().Portfolio(mock.Anything, uint64(7)).Return(p, nil)

		rec := s.do(get("/", true, false))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		body := rec.Body.String()
		assert.Contains(t, body, "NFLX")
		assert.Contains(t, body, "$250.00 *")
		assert.Contains(t, body, "$9,500.00")
		assert.Contains(t, body, "$10,000.00")
	})

	t.Run("should return JSON when asked", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.portfolio.EXPECT().Portfolio(mock.Anything, uint64(7)).Return(p, nil)

		rec := s.do(get("/", true, true))

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.PortfolioResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "9500.00", body.Cash)
		assert.Equal(t, "10000.00", body.GrandTotal)
		require.Len(t, body.Holdings, 1)
		assert.True(t, body.Holdings[0].Stale)
	})
}

func TestRoutes_Quote(t *testing.T) {
	t.Run("should render the quoted price", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.portfolio.EXPECT().Quote(mock.Anything, "nflx").Return(&entity.Quote{
			Symbol: "NFLX", Name: "Netflix, Inc.", Price: decimal.RequireFromString("1234.5"),
		}, nil)

		rec := s.do(postForm("/quote", url.Values{"symbol": {"nflx"}}, true, false))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "$1,234.50")
	})

	t.Run("should apologize with 400 for an unknown symbol", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.portfolio.EXPECT().Quote(mock.Anything, "zzzz").Return(nil, errs.ErrUnknownSymbol)

		rec := s.do(postForm("/quote", url.Values{"symbol": {"zzzz"}}, true, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown symbol")
	})

	t.Run("should apologize with 503 when quotes are unreachable", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.portfolio.EXPECT().Quote(mock.Anything, "nflx").Return(nil, errs.ErrQuoteUnavailable)

		rec := s.do(postForm("/quote", url.Values{"symbol": {"nflx"}}, true, true))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRoutes_Buy(t *testing.T) {
	receipt := &entity.TradeReceipt{
		Action:     entity.ActionBuy,
		Symbol:     "NFLX",
		Name:       "Netflix, Inc.",
		Shares:     2,
		Price:      decimal.RequireFromString("250"),
		Total:      decimal.RequireFromString("500"),
		CashAfter:  decimal.RequireFromString("9500"),
		ExecutedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	form := url.Values{"symbol": {"nflx"}, "shares": {"2"}}

	t.Run("should redirect browsers home", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.ledger.EXPECT().Buy(mock.Anything, uint64(7), "nflx", int64(2)).Return(receipt, nil)

		rec := s.do(postForm("/buy", form, true, false))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("should return the receipt to JSON clients", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.ledger.EXPECT().Buy(mock.Anything, uint64(7), "nflx", int64(2)).Return(receipt, nil)

		rec := s.do(postForm("/buy", form, true, true))

		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.TradeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "buy", body.Action)
		assert.Equal(t, "500.00", body.Total)
		assert.Equal(t, "9500.00", body.CashAfter)
	})

	t.Run("should accept a JSON body", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.ledger.EXPECT().Buy(mock.Anything, uint64(7), "NFLX", int64(3)).Return(receipt, nil)

		req := httptest.NewRequest(http.MethodPost, "/buy", strings.NewReader(`{"symbol":"NFLX","shares":3}`))
		req.Header.Set("Content-Type", "application/json")
		decorate(req, true, true)
		rec := s.do(req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject fractional shares before the ledger", func(t *testing.T) {
		for _, shares := range []string{"1.5", "-1", "0", "abc", ""} {
			s := newTestServer(t)
			s.loggedIn(7)

			rec := s.do(postForm("/buy", url.Values{"symbol": {"nflx"}, "shares": {shares}}, true, false))

			assert.Equal(t, http.StatusBadRequest, rec.Code, "shares=%q", shares)
		}
	})

	t.Run("should require a symbol", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)

		rec := s.do(postForm("/buy", url.Values{"shares": {"1"}}, true, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "must provide symbol")
	})

	t.Run("should apologize when funds are short", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.ledger.EXPECT().Buy(mock.Anything, uint64(7), "nflx", int64(2)).
			Return(nil, errs.NewInsufficientFundsError(7, "NFLX", "500.00", "20.00"))

		rec := s.do(postForm("/buy", form, true, true))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, errs.CodeInsufficientFunds, body.Code)
		assert.Equal(t, "insufficient funds", body.Message)
	})

	t.Run("should hide storage failures", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.ledger.EXPECT().Buy(mock.Anything, uint64(7), "nflx", int64(2)).
			Return(nil, errors.New("pq: connection reset by peer"))

		rec := s.do(postForm("/buy", form, true, false))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
		assert.Contains(t, rec.Body.String(), "something went wrong")
	})
}

func TestRoutes_Sell(t *testing.T) {
	t.Run("should offer only owned symbols", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.portfolio.EXPECT().OwnedSymbols(mock.Anything, uint64(7)).Return([]string{"AAPL", "NFLX"}, nil)

		rec := s.do(get("/sell", true, false))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<option value="AAPL">AAPL</option>`)
		assert.Contains(t, rec.Body.String(), `<option value="NFLX">NFLX</option>`)
	})

	t.Run("should apologize when selling more than owned", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.ledger.EXPECT().Sell(mock.Anything, uint64(7), "AAPL", int64(11)).
			Return(nil, errs.NewInsufficientSharesError(7, "AAPL", 11, 10))

		rec := s.do(postForm("/sell", url.Values{"symbol": {"AAPL"}, "shares": {"11"}}, true, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "insufficient shares")
	})
}

func TestRoutes_History(t *testing.T) {
	entries := []entity.HistoryEntry{
		{ID: 2, UserID: 7, Action: entity.ActionSell, Symbol: "NFLX", Shares: 1, Price: decimal.RequireFromString("300"),
			Date: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)},
		{ID: 1, UserID: 7, Action: entity.ActionBuy, Symbol: "NFLX", Shares: 2, Price: decimal.RequireFromString("250"),
			Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
	}

	t.Run("should keep newest first in JSON", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.portfolio.EXPECT().History(mock.Anything, uint64(7)).Return(entries, nil)

		rec := s.do(get("/history", true, true))

		require.Equal(t, http.StatusOK, rec.Code)
		var body []dto.HistoryEntryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "sell", body[0].Action)
		assert.Equal(t, "buy", body[1].Action)
	})

	t.Run("should download the spreadsheet as an attachment", func(t *testing.T) {
		s := newTestServer(t)
		s.loggedIn(7)
		s.portfolio.EXPECT().ExportHistory(mock.Anything, uint64(7)).Return(&entity.HistoryReport{
			Filename:    "history-alice.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     []byte("PK"),
		}, nil)

		rec := s.do(get("/history/export", true, false))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="history-alice.xlsx"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		assert.Equal(t, "PK", rec.Body.String())
	})
}

func TestRoutes_PanicRendersApology(t *testing.T) {
	s := newTestServer(t)
	s.loggedIn(7)
	s.portfolio.EXPECT().History(mock.Anything, uint64(7)).
		RunAndReturn(func(context.Context, uint64) ([]entity.HistoryEntry, error) {
			panic("boom")
		})

	rec := s.do(get("/history", true, true))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errs.CodeInternalServer, body.Code)
	assert.Equal(t, "something went wrong", body.Message)
}

func TestRoutes_Health(t *testing.T) {
	t.Run("should report the database up", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(get("/healthz", false, false))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())
	})

	t.Run("should return 503 when the database is down", func(t *testing.T) {
		s := newTestServer(t)
		s.checker.err = errors.New("dial tcp: connection refused")

		rec := s.do(get("/healthz", false, false))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable","database":"down"}`, rec.Body.String())
	})
}
