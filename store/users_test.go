package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

func TestLoginRegistersNewUser(t *testing.T) {
	s, _ := newTestStore(t)

	user := loginUser(t, s, "s1", "Rahim", "rahim@example.com")
	require.Regexp(t, `^U-\d+$`, user.ID)
	require.Equal(t, models.RoleUser, user.Role)
	require.Equal(t, 0, user.WalletBalance)
	require.False(t, user.IsBanned)

	users := s.AllUsers()
	require.Len(t, users, 1)
	require.Equal(t, user, users[0])
}

func TestLoginIsUpsertByEmail(t *testing.T) {
	s, _ := newTestStore(t)

	first := loginUser(t, s, "s1", "Rahim", "rahim@example.com")
	require.NoError(t, s.Logout(context.Background(), "s1"))

	// Same email from another session: same identity, no duplicate row.
	second := loginUser(t, s, "s2", "Rahim Uddin", "rahim@example.com")
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.Name, second.Name)
	require.Len(t, s.AllUsers(), 1)
}

func TestLoginRejectsBannedUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	loginUser(t, s, "s1", "Rahim", "rahim@example.com")
	require.NoError(t, s.Logout(ctx, "s1"))

	_, err := s.ToggleUserBan(ctx, "a1", "rahim@example.com")
	require.NoError(t, err)

	_, err = s.Login(ctx, "s2", store.LoginProfile{Name: "Rahim", Email: "rahim@example.com"})
	require.ErrorIs(t, err, store.ErrBanned)

	// No session was created for the banned account.
	_, ok, err := s.CurrentUser(ctx, "s2")
	require.NoError(t, err)
	require.False(t, ok)

	n := s.Notification("s2")
	require.NotNil(t, n)
	require.Equal(t, models.NotifyError, n.Type)
}

func TestToggleUserBanFlips(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	loginUser(t, s, "s1", "Rahim", "rahim@example.com")

	user, err := s.ToggleUserBan(ctx, "a1", "rahim@example.com")
	require.NoError(t, err)
	require.True(t, user.IsBanned)

	user, err = s.ToggleUserBan(ctx, "a1", "rahim@example.com")
	require.NoError(t, err)
	require.False(t, user.IsBanned)

	_, err = s.ToggleUserBan(ctx, "a1", "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogoutKeepsCart(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	loginUser(t, s, "s1", "Rahim", "rahim@example.com")
	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))

	require.NoError(t, s.Logout(ctx, "s1"))

	_, ok, err := s.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.False(t, ok)

	cart, err := s.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
}

func TestUpdateUserMergesIntoBothCopies(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	loginUser(t, s, "s1", "Rahim", "rahim@example.com")

	phone := "01700000000"
	updated, err := s.UpdateUser(ctx, "s1", store.UserUpdate{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, phone, updated.Phone)
	require.Equal(t, "Rahim", updated.Name) // untouched field survives

	sessionUser, ok, err := s.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, phone, sessionUser.Phone)

	users := s.AllUsers()
	require.Len(t, users, 1)
	require.Equal(t, phone, users[0].Phone)
}

func TestUpdateUserRequiresLogin(t *testing.T) {
	s, _ := newTestStore(t)
	name := "Someone"
	_, err := s.UpdateUser(context.Background(), "s1", store.UserUpdate{Name: &name})
	require.ErrorIs(t, err, store.ErrNotLoggedIn)
}

func TestAdminLogin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.AdminLogin(ctx, "s1", "RoyTopUpadmin", "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	admin, ok, err := s.AdminLogin(ctx, "s1", "RoyTopUpadmin", "admin638")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.Equal(t, "admin@roytopup.com", admin.Email)

	// The admin is a session-only identity, never a registry row.
	require.Empty(t, s.AllUsers())

	sessionUser, ok, err := s.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, admin, sessionUser)
}

func TestSessionUserRehydratesFromPersistence(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	user := loginUser(t, s, "s1", "Rahim", "rahim@example.com")

	s2, err := rehydrate(p)
	require.NoError(t, err)
	got, ok, err := s2.CurrentUser(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, user, got)
}
