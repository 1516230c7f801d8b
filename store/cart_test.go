package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/papon78/RoyTopUpBazar/models"
)

func TestAddToCartMergesSameSelection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item := cartItem("ff-diamonds", "ff-50", "12345", 36)
	require.NoError(t, s.AddToCart(ctx, "s1", item))
	require.NoError(t, s.AddToCart(ctx, "s1", item))

	cart, err := s.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, 2, cart[0].Quantity)
}

func TestAddToCartKeepsDistinctPlayerIDs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))
	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "222", 36)))

	cart, err := s.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart, 2)
	require.Equal(t, 1, cart[0].Quantity)
	require.Equal(t, 1, cart[1].Quantity)
}

func TestCartsAreSessionScoped(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))

	other, err := s.Cart(ctx, "s2")
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestRemoveFromCartMatchesProductOptionPair(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))
	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "222", 36)))
	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("pubg-uc", "pubg-60", "333", 115)))

	// Removal by pair takes both playerId variants of the same option.
	require.NoError(t, s.RemoveFromCart(ctx, "s1", "ff-diamonds", "ff-50"))

	cart, err := s.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, "pubg-uc", cart[0].ProductID)
}

func TestClearCart(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))
	require.NoError(t, s.ClearCart(ctx, "s1"))

	cart, err := s.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, cart)
}

func TestCartPersistenceRoundTrip(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))
	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))

	raw, ok, err := p.Get(ctx, "roy_cart:s1")
	require.NoError(t, err)
	require.True(t, ok)

	var persisted []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))

	cart, err := s.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, cart, persisted)
}

func TestCartRehydratesFromPersistence(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddToCart(ctx, "s1", cartItem("ff-diamonds", "ff-50", "111", 36)))

	// A fresh store over the same medium sees the same cart.
	s2, err := rehydrate(p)
	require.NoError(t, err)
	cart, err := s2.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, "ff-50", cart[0].OptionID)
}
