package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

func testProduct(id string) models.Product {
	return models.Product{
		ID:    id,
		Title: "Test Product",
		Type:  models.ProductTypeVoucher,
		Options: []models.ProductOption{
			{ID: id + "-1", Name: "Small", Price: 50},
		},
	}
}

func TestAddProduct(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	before := len(s.Products())

	require.NoError(t, s.AddProduct(ctx, "a1", testProduct("new-card")))
	require.Len(t, s.Products(), before+1)

	got, ok := s.Product("new-card")
	require.True(t, ok)
	require.Equal(t, "Test Product", got.Title)
}

func TestAddProductRejectsDuplicateID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddProduct(ctx, "a1", testProduct("new-card")))
	require.ErrorIs(t, s.AddProduct(ctx, "a1", testProduct("new-card")), store.ErrProductExists)
}

func TestAddProductRequiresOptions(t *testing.T) {
	s, _ := newTestStore(t)
	p := testProduct("new-card")
	p.Options = nil
	require.ErrorIs(t, s.AddProduct(context.Background(), "a1", p), store.ErrNoOptions)
}

func TestUpdateProduct(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddProduct(ctx, "a1", testProduct("new-card")))

	updated := testProduct("new-card")
	updated.Title = "Renamed"
	require.NoError(t, s.UpdateProduct(ctx, "a1", updated))

	got, ok := s.Product("new-card")
	require.True(t, ok)
	require.Equal(t, "Renamed", got.Title)

	require.ErrorIs(t, s.UpdateProduct(ctx, "a1", testProduct("missing")), store.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddProduct(ctx, "a1", testProduct("new-card")))

	require.NoError(t, s.DeleteProduct(ctx, "a1", "new-card"))
	_, ok := s.Product("new-card")
	require.False(t, ok)

	require.ErrorIs(t, s.DeleteProduct(ctx, "a1", "new-card"), store.ErrNotFound)

	// The change survives a rehydrate.
	s2, err := rehydrate(p)
	require.NoError(t, err)
	_, ok = s2.Product("new-card")
	require.False(t, ok)
}
