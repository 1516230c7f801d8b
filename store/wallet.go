package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/papon78/RoyTopUpBazar/models"
)

// WalletTransactions returns the session user's ledger, newest-first.
func (s *Store) WalletTransactions(ctx context.Context, sid string) ([]models.WalletTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return nil, err
	}
	if sess.user == nil {
		return nil, ErrNotLoggedIn
	}
	ledger, err := s.ledgerFor(ctx, sess.user.Email)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ledger), nil
}

// AddMoneyToWallet credits the session user's balance. The transaction id is
// taken at face value — there is no gateway to verify it against, same as the
// checkout flow.
func (s *Store) AddMoneyToWallet(ctx context.Context, sid string, amount int, method, trxID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return err
	}
	if sess.user == nil {
		return ErrNotLoggedIn
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if err := s.creditLocked(ctx, sid, sess, amount, "Wallet Top-up", method); err != nil {
		return err
	}
	s.notifier.show(sid, fmt.Sprintf("৳%d added to wallet successfully!", amount), models.NotifySuccess)
	return nil
}

// ProcessWalletPayment debits the session user's balance for an order. An
// insufficient balance fails before any state is touched.
func (s *Store) ProcessWalletPayment(ctx context.Context, sid string, amount int, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return err
	}
	return s.walletPaymentLocked(ctx, sid, sess, amount, orderID)
}

func (s *Store) walletPaymentLocked(ctx context.Context, sid string, sess *session, amount int, orderID string) error {
	if sess.user == nil {
		return ErrNotLoggedIn
	}
	// A fully discounted order pays 0; the ledger still records the payment.
	if amount < 0 {
		return ErrInvalidAmount
	}
	if sess.user.WalletBalance < amount {
		s.notifier.show(sid, "Insufficient wallet balance", models.NotifyError)
		return ErrInsufficientBalance
	}
	return s.debitLocked(ctx, sid, sess, amount, fmt.Sprintf("Payment for Order #%s", orderID), "Wallet")
}

// creditLocked and debitLocked mutate the session copy, the registry copy and
// the ledger in one critical section so the two user copies cannot diverge.

func (s *Store) creditLocked(ctx context.Context, sid string, sess *session, amount int, desc, method string) error {
	updated := *sess.user
	updated.WalletBalance += amount
	return s.applyWalletChangeLocked(ctx, sid, sess, updated, models.TransactionCredit, amount, desc, method)
}

func (s *Store) debitLocked(ctx context.Context, sid string, sess *session, amount int, desc, method string) error {
	updated := *sess.user
	updated.WalletBalance -= amount
	return s.applyWalletChangeLocked(ctx, sid, sess, updated, models.TransactionDebit, amount, desc, method)
}

func (s *Store) applyWalletChangeLocked(ctx context.Context, sid string, sess *session, updated models.User,
	typ models.TransactionType, amount int, desc, method string) error {

	ledger, err := s.ledgerFor(ctx, updated.Email)
	if err != nil {
		return err
	}

	trx := models.WalletTransaction{
		ID:          fmt.Sprintf("WTX-%d", time.Now().UnixMilli()),
		Type:        typ,
		Amount:      amount,
		Date:        time.Now().UTC().Format(time.RFC3339),
		Description: desc,
		Method:      method,
		Status:      "Completed",
	}
	ledger = append([]models.WalletTransaction{trx}, ledger...)

	sess.user = &updated
	if err := s.persistJSON(ctx, keyUserPrefix+sid, updated); err != nil {
		return err
	}
	if err := s.updateRegistryLocked(ctx, updated); err != nil {
		return err
	}
	s.ledgers[updated.Email] = ledger
	return s.persistJSON(ctx, keyWalletPrefix+updated.Email, ledger)
}

// updateRegistryLocked replaces the registry entry matching the user's email.
// The synthetic admin user has no registry entry, which is fine.
func (s *Store) updateRegistryLocked(ctx context.Context, updated models.User) error {
	changed := false
	for i, u := range s.allUsers {
		if u.Email == updated.Email {
			s.allUsers[i] = updated
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persistJSON(ctx, keyAllUsers, s.allUsers)
}
