package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/shopspring/decimal"
)

// UserRepository stores users in memory
type UserRepository struct {
	store *Store
	tx    *transaction
}

// Create persists a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.view(ctx, r.tx, func(st *state) error {
		if _, exists := st.usernames[user.Username]; exists {
			return fmt.Errorf("%w: username %q", errs.ErrDuplicateKey, user.Username)
		}
		if user.Cash().IsNegative() {
			return errs.ErrConstraintViolation
		}

		user.ID = st.nextUserID
		st.nextUserID++

		copied := *user
		st.users[user.ID] = &copied
		st.usernames[user.Username] = user.ID
		return nil
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var found *entity.User
	err := r.store.view(ctx, r.tx, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return errs.ErrUserNotFound
		}
		copied := *u
		found = &copied
		return nil
	})
	return found, err
}

// GetByUsername retrieves a user by login name
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var found *entity.User
	err := r.store.view(ctx, r.tx, func(st *state) error {
		id, ok := st.usernames[username]
		if !ok {
			return errs.ErrUserNotFound
		}
		copied := *st.users[id]
		found = &copied
		return nil
	})
	return found, err
}

// GetByIDForUpdate retrieves a user; the transaction already holds the store lock
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

// UpdateCash stores a new cash balance
func (r *UserRepository) UpdateCash(ctx context.Context, userID uint64, cash decimal.Decimal) error {
	if cash.IsNegative() {
		return fmt.Errorf("%w: cash cannot be negative", errs.ErrConstraintViolation)
	}

	now := r.store.timeProvider.Now()
	return r.store.view(ctx, r.tx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return errs.ErrUserNotFound
		}
		*u = *entity.RestoreUser(u.ID, u.Username, u.PasswordHash, cash, u.CreatedAt, now)
		return nil
	})
}

// HoldingRepository stores purchase lots in memory
type HoldingRepository struct {
	store *Store
	tx    *transaction
}

// Create inserts a new lot and assigns its ID
func (r *HoldingRepository) Create(ctx context.Context, lot *entity.Holding) error {
	if lot.Shares <= 0 {
		return fmt.Errorf("%w: shares must be positive", errs.ErrConstraintViolation)
	}

	return r.store.view(ctx, r.tx, func(st *state) error {
		if _, ok := st.users[lot.UserID]; !ok {
			return fmt.Errorf("%w: unknown user %d", errs.ErrConstraintViolation, lot.UserID)
		}
		lot.ID = st.nextHoldingID
		st.nextHoldingID++
		st.holdings = append(st.holdings, *lot)
		return nil
	})
}

// SumShares returns the aggregate shares of a user in symbol
func (r *HoldingRepository) SumShares(ctx context.Context, userID uint64, symbol string) (int64, error) {
	var total int64
	err := r.store.view(ctx, r.tx, func(st *state) error {
		for _, lot := range st.holdings {
			if lot.UserID == userID && lot.Symbol == symbol {
				total += lot.Shares
			}
		}
		return nil
	})
	return total, err
}

// Positions aggregates lots by symbol
func (r *HoldingRepository) Positions(ctx context.Context, userID uint64) ([]entity.Position, error) {
	var positions []entity.Position
	err := r.store.view(ctx, r.tx, func(st *state) error {
		bySymbol := make(map[string]*entity.Position)
		latest := make(map[string]entity.Holding)

		for _, lot := range st.holdings {
			if lot.UserID != userID {
				continue
			}
			pos, ok := bySymbol[lot.Symbol]
			if !ok {
				pos = &entity.Position{Symbol: lot.Symbol}
				bySymbol[lot.Symbol] = pos
			}
			pos.Shares += lot.Shares

			prev, seen := latest[lot.Symbol]
			if !seen || lot.Date.After(prev.Date) || (lot.Date.Equal(prev.Date) && lot.ID > prev.ID) {
				latest[lot.Symbol] = lot
			}
		}

		positions = make([]entity.Position, 0, len(bySymbol))
		for symbol, pos := range bySymbol {
			pos.Name = latest[symbol].Name
			pos.LastPrice = latest[symbol].Price
			positions = append(positions, *pos)
		}
		sort.Slice(positions, func(i, j int) bool {
			return positions[i].Symbol < positions[j].Symbol
		})
		return nil
	})
	return positions, err
}

// Reduce consumes lots oldest first
func (r *HoldingRepository) Reduce(ctx context.Context, userID uint64, symbol string, shares int64) error {
	return r.store.view(ctx, r.tx, func(st *state) error {
		var owned int64
		var indexes []int
		for i, lot := range st.holdings {
			if lot.UserID == userID && lot.Symbol == symbol {
				owned += lot.Shares
				indexes = append(indexes, i)
			}
		}
		if shares > owned {
			return errs.NewInsufficientSharesError(userID, symbol, shares, owned)
		}

		sort.Slice(indexes, func(a, b int) bool {
			la, lb := st.holdings[indexes[a]], st.holdings[indexes[b]]
			if la.Date.Equal(lb.Date) {
				return la.ID < lb.ID
			}
			return la.Date.Before(lb.Date)
		})

		remaining := shares
		consumed := make(map[int]bool)
		for _, i := range indexes {
			if remaining == 0 {
				break
			}
			lot := &st.holdings[i]
			if lot.Shares <= remaining {
				remaining -= lot.Shares
				consumed[i] = true
				continue
			}
			lot.Shares -= remaining
			remaining = 0
		}

		kept := st.holdings[:0:0]
		for i, lot := range st.holdings {
			if !consumed[i] {
				kept = append(kept, lot)
			}
		}
		st.holdings = kept
		return nil
	})
}

// HeldSymbols lists distinct symbols across all users
func (r *HoldingRepository) HeldSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	err := r.store.view(ctx, r.tx, func(st *state) error {
		seen := make(map[string]bool)
		for _, lot := range st.holdings {
			if !seen[lot.Symbol] {
				seen[lot.Symbol] = true
				symbols = append(symbols, lot.Symbol)
			}
		}
		sort.Strings(symbols)
		return nil
	})
	return symbols, err
}

// HistoryRepository stores history entries in memory
type HistoryRepository struct {
	store *Store
	tx    *transaction
}

// Append records an entry and assigns its ID
func (r *HistoryRepository) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	if !entry.Action.IsValid() || entry.Shares <= 0 {
		return errs.ErrConstraintViolation
	}

	return r.store.view(ctx, r.tx, func(st *state) error {
		entry.ID = st.nextHistoryID
		st.nextHistoryID++
		st.history = append(st.history, *entry)
		return nil
	})
}

// ListByUser returns the user's entries, newest first
func (r *HistoryRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error) {
	var entries []entity.HistoryEntry
	err := r.store.view(ctx, r.tx, func(st *state) error {
		for _, e := range st.history {
			if e.UserID == userID {
				entries = append(entries, e)
			}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Date.Equal(entries[j].Date) {
				return entries[i].ID > entries[j].ID
			}
			return entries[i].Date.After(entries[j].Date)
		})
		return nil
	})
	return entries, err
}
