package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

func TestWalletRequiresLogin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	err := s.AddMoneyToWallet(ctx, "s1", 100, "Bkash", "TRX123")
	require.ErrorIs(t, err, store.ErrNotLoggedIn)

	err = s.ProcessWalletPayment(ctx, "s1", 100, "ORD-1")
	require.ErrorIs(t, err, store.ErrNotLoggedIn)
}

func TestWalletDebitGuard(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	loginUser(t, s, "s1", "Rahim", "rahim@example.com")

	err := s.ProcessWalletPayment(ctx, "s1", 50, "ORD-1")
	require.ErrorIs(t, err, store.ErrInsufficientBalance)

	user, ok, err := s.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, user.WalletBalance)

	ledger, err := s.WalletTransactions(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, ledger)
}

func TestWalletCreditDebitRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	loginUser(t, s, "s1", "Rahim", "rahim@example.com")

	require.NoError(t, s.AddMoneyToWallet(ctx, "s1", 500, "Bkash", "TRX500"))
	user, _, err := s.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 500, user.WalletBalance)

	ledger, err := s.WalletTransactions(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	require.Equal(t, models.TransactionCredit, ledger[0].Type)
	require.Equal(t, 500, ledger[0].Amount)

	require.NoError(t, s.ProcessWalletPayment(ctx, "s1", 200, "ORD-1"))
	user, _, err = s.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 300, user.WalletBalance)

	ledger, err = s.WalletTransactions(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	// Newest-first: the debit leads, the credit follows.
	require.Equal(t, models.TransactionDebit, ledger[0].Type)
	require.Equal(t, 200, ledger[0].Amount)
	require.Contains(t, ledger[0].Description, "ORD-1")
	require.Equal(t, models.TransactionCredit, ledger[1].Type)
}

func TestWalletCreditSyncsRegistryCopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	loginUser(t, s, "s1", "Rahim", "rahim@example.com")

	require.NoError(t, s.AddMoneyToWallet(ctx, "s1", 750, "Nagad", "TRX750"))

	users := s.AllUsers()
	require.Len(t, users, 1)
	require.Equal(t, 750, users[0].WalletBalance)
}

func TestWalletLedgerPersistenceRoundTrip(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	loginUser(t, s, "s1", "Rahim", "rahim@example.com")

	require.NoError(t, s.AddMoneyToWallet(ctx, "s1", 500, "Bkash", "TRX500"))

	raw, ok, err := p.Get(ctx, "roy_wallet_trx:rahim@example.com")
	require.NoError(t, err)
	require.True(t, ok)

	var persisted []models.WalletTransaction
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))

	ledger, err := s.WalletTransactions(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, ledger, persisted)
}

func TestAdminUpdateUserBalance(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	loginUser(t, s, "s1", "Rahim", "rahim@example.com")

	user, err := s.UpdateUserBalance(ctx, "a1", "rahim@example.com", 400, models.TransactionCredit)
	require.NoError(t, err)
	require.Equal(t, 400, user.WalletBalance)

	// Debit clamps at zero instead of going negative.
	user, err = s.UpdateUserBalance(ctx, "a1", "rahim@example.com", 1000, models.TransactionDebit)
	require.NoError(t, err)
	require.Equal(t, 0, user.WalletBalance)

	// The live session sees the admin's change.
	sessionUser, ok, err := s.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, sessionUser.WalletBalance)
}

func TestAdminUpdateUserBalanceUnknownUser(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.UpdateUserBalance(context.Background(), "a1", "nobody@example.com", 100, models.TransactionCredit)
	require.ErrorIs(t, err, store.ErrNotFound)
}
