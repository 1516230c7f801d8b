// Package store owns every piece of mutable application state: the catalog,
// orders, user registry, promo codes, site notice, per-session carts and
// per-user wallet ledgers. All mutations go through one mutex and are mirrored
// to the persistence medium before the operation returns, so the persisted
// copy always reflects the last in-memory write.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/papon78/RoyTopUpBazar/data"
	"github.com/papon78/RoyTopUpBazar/models"
)

// Persisted key layout. Shared keys are reloaded when another process writes
// them; session and ledger keys are local to one session/user and never synced.
const (
	keyProducts = "roy_products"
	keyOrders   = "roy_orders"
	keyAllUsers = "roy_all_users"
	keyPromos   = "roy_promos"
	keyNotice   = "roy_notice"

	keyUserPrefix   = "roy_user:"
	keyCartPrefix   = "roy_cart:"
	keyWalletPrefix = "roy_wallet_trx:"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrNotLoggedIn         = errors.New("login required")
	ErrBanned              = errors.New("account banned by admin")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingPaymentInfo  = errors.New("payment phone and transaction id are required")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrProductExists       = errors.New("product id already exists")
	ErrNoOptions           = errors.New("product needs at least one option")
	ErrPromoExists         = errors.New("promo code already exists")
	ErrInvalidPromo        = errors.New("invalid or inactive promo code")
)

// AdminConfig is the single fixed admin credential pair. The admin session
// user is synthesized from it and never written to the user registry.
type AdminConfig struct {
	Username string
	Password string
	Email    string
	Name     string
}

// session is the server-side equivalent of one browser tab: its logged-in
// user (nil for guests) and its cart.
type session struct {
	user *models.User
	cart []models.CartItem
}

type Store struct {
	mu sync.Mutex
	p  Persistence

	admin AdminConfig

	products []models.Product
	orders   []models.Order
	allUsers []models.User
	promos   []models.PromoCode
	notice   string

	sessions map[string]*session
	ledgers  map[string][]models.WalletTransaction // keyed by user email

	notifier *notifier
}

func New(p Persistence, admin AdminConfig) *Store {
	return &Store{
		p:        p,
		admin:    admin,
		sessions: make(map[string]*session),
		ledgers:  make(map[string][]models.WalletTransaction),
		notifier: newNotifier(),
	}
}

// Load populates every shared slice from its persisted key, falling back to
// the built-in default when a key is absent. The persisted value is trusted
// as-is; it is a mirror of the last write, not a competing source of truth.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSharedLocked(ctx)
}

// StartSync begins watching for writes made by other processes against the
// shared medium. Any foreign write to a shared key triggers a full reload of
// the shared slices, mirroring the original last-writer-wins behavior.
func (s *Store) StartSync(ctx context.Context) {
	s.p.Subscribe(ctx, func(key string) {
		switch key {
		case keyProducts, keyOrders, keyAllUsers, keyPromos, keyNotice:
			s.mu.Lock()
			defer s.mu.Unlock()
			if err := s.loadSharedLocked(ctx); err != nil {
				log.Printf("❌ Failed to reload state after external change to %s: %v", key, err)
			}
		}
	})
}

func (s *Store) loadSharedLocked(ctx context.Context) error {
	s.products = data.Products()
	if err := s.loadJSON(ctx, keyProducts, &s.products); err != nil {
		return err
	}
	s.orders = nil
	if err := s.loadJSON(ctx, keyOrders, &s.orders); err != nil {
		return err
	}
	s.allUsers = nil
	if err := s.loadJSON(ctx, keyAllUsers, &s.allUsers); err != nil {
		return err
	}
	s.promos = nil
	if err := s.loadJSON(ctx, keyPromos, &s.promos); err != nil {
		return err
	}
	notice, ok, err := s.p.Get(ctx, keyNotice)
	if err != nil {
		return err
	}
	if ok {
		s.notice = notice
	}
	return nil
}

func (s *Store) loadJSON(ctx context.Context, key string, v any) error {
	raw, ok, err := s.p.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to decode persisted %s: %w", key, err)
	}
	return nil
}

func (s *Store) persistJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.p.Set(ctx, key, string(raw))
}

// getSession returns the in-memory session for sid, rehydrating its user and
// cart from the persisted session keys the first time the sid is seen.
func (s *Store) getSession(ctx context.Context, sid string) (*session, error) {
	if sess, ok := s.sessions[sid]; ok {
		return sess, nil
	}
	sess := &session{}
	var user models.User
	raw, ok, err := s.p.Get(ctx, keyUserPrefix+sid)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("failed to decode persisted session user: %w", err)
		}
		sess.user = &user
	}
	if err := s.loadJSON(ctx, keyCartPrefix+sid, &sess.cart); err != nil {
		return nil, err
	}
	s.sessions[sid] = sess
	return sess, nil
}

// ledgerFor returns the wallet ledger for a user email, loading it lazily.
func (s *Store) ledgerFor(ctx context.Context, email string) ([]models.WalletTransaction, error) {
	if ledger, ok := s.ledgers[email]; ok {
		return ledger, nil
	}
	var ledger []models.WalletTransaction
	if err := s.loadJSON(ctx, keyWalletPrefix+email, &ledger); err != nil {
		return nil, err
	}
	s.ledgers[email] = ledger
	return ledger, nil
}

// Snapshot returns the current persisted form of every shared slice, for the
// daily backup routine.
func (s *Store) Snapshot(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := make(map[string]string)
	for key, v := range map[string]any{
		keyProducts: s.products,
		keyOrders:   s.orders,
		keyAllUsers: s.allUsers,
		keyPromos:   s.promos,
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		snap[key] = string(raw)
	}
	snap[keyNotice] = s.notice
	return snap, nil
}
