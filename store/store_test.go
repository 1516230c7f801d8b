package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/papon78/RoyTopUpBazar/data"
	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

func newTestStore(t *testing.T) (*store.Store, *store.MemoryPersistence) {
	t.Helper()
	p := store.NewMemoryPersistence()
	s := store.New(p, store.AdminConfig{
		Username: "RoyTopUpadmin",
		Password: "admin638",
		Email:    "admin@roytopup.com",
		Name:     "Admin",
	})
	require.NoError(t, s.Load(context.Background()))
	return s, p
}

func rehydrate(p *store.MemoryPersistence) (*store.Store, error) {
	s := store.New(p, store.AdminConfig{
		Username: "RoyTopUpadmin",
		Password: "admin638",
		Email:    "admin@roytopup.com",
		Name:     "Admin",
	})
	if err := s.Load(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func loginUser(t *testing.T, s *store.Store, sid, name, email string) models.User {
	t.Helper()
	user, err := s.Login(context.Background(), sid, store.LoginProfile{Name: name, Email: email})
	require.NoError(t, err)
	return user
}

func cartItem(productID, optionID, playerID string, price int) models.CartItem {
	return models.CartItem{
		ProductID:    productID,
		ProductTitle: productID,
		OptionID:     optionID,
		OptionName:   optionID,
		Price:        price,
		PlayerID:     playerID,
		Quantity:     1,
	}
}

func TestLoadDefaultsToSeedCatalog(t *testing.T) {
	s, _ := newTestStore(t)
	require.Equal(t, data.Products(), s.Products())
}

func TestLoadPrefersPersistedCatalog(t *testing.T) {
	p := store.NewMemoryPersistence()
	custom := []models.Product{{
		ID:      "custom",
		Title:   "Custom",
		Type:    models.ProductTypeVoucher,
		Options: []models.ProductOption{{ID: "c-1", Name: "One", Price: 10}},
	}}
	raw, err := json.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, p.Set(context.Background(), "roy_products", string(raw)))

	s := store.New(p, store.AdminConfig{})
	require.NoError(t, s.Load(context.Background()))
	require.Equal(t, custom, s.Products())
}

func TestExternalChangeReloadsSharedSlices(t *testing.T) {
	s, p := newTestStore(t)
	s.StartSync(context.Background())

	p.ExternalWrite("roy_notice", "Eid flash sale!")
	require.Equal(t, "Eid flash sale!", s.SiteNotice())

	promos := []models.PromoCode{{Code: "EID10", Type: models.PromoPercentage, Value: 10, IsActive: true}}
	raw, err := json.Marshal(promos)
	require.NoError(t, err)
	p.ExternalWrite("roy_promos", string(raw))
	require.Equal(t, promos, s.PromoCodes())
}

func TestSessionKeysAreNotSynced(t *testing.T) {
	s, p := newTestStore(t)
	s.StartSync(context.Background())

	ctx := context.Background()
	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))

	// A foreign write to this session's cart key must not clobber it.
	p.ExternalWrite("roy_cart:s1", "[]")
	cart, err := s.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
}

func TestNoticePersistsRaw(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateSiteNotice(ctx, "a1", "Maintenance tonight 2AM"))
	raw, ok, err := p.Get(ctx, "roy_notice")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Maintenance tonight 2AM", raw)
}

func TestNotificationShowAndHide(t *testing.T) {
	s, _ := newTestStore(t)

	s.ShowNotification("s1", "Order placed successfully!", models.NotifySuccess)
	n := s.Notification("s1")
	require.NotNil(t, n)
	require.Equal(t, "Order placed successfully!", n.Message)
	require.Equal(t, models.NotifySuccess, n.Type)

	s.HideNotification("s1")
	require.Nil(t, s.Notification("s1"))
}

func TestNotificationIsScopedToSession(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))

	// s1's toast stays invisible to s2.
	require.NotNil(t, s.Notification("s1"))
	require.Nil(t, s.Notification("s2"))

	// Dismissing from s2 leaves s1's toast alone.
	s.HideNotification("s2")
	require.NotNil(t, s.Notification("s1"))
}

func TestSnapshotContainsAllSharedSlices(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.UpdateSiteNotice(ctx, "a1", "hello"))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "hello", snap["roy_notice"])

	var products []models.Product
	require.NoError(t, json.Unmarshal([]byte(snap["roy_products"]), &products))
	require.Equal(t, data.Products(), products)
	require.Contains(t, snap, "roy_orders")
	require.Contains(t, snap, "roy_all_users")
	require.Contains(t, snap, "roy_promos")
}
