package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/papon78/RoyTopUpBazar/models"
	"github.com/papon78/RoyTopUpBazar/store"
)

func TestAddPromoCodeNormalizesToUppercase(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddPromoCode(ctx, "a1", models.PromoCode{
		Code: "eid25", Type: models.PromoPercentage, Value: 25, IsActive: true,
	}))

	promo, ok := s.VerifyPromoCode("EID25")
	require.True(t, ok)
	require.Equal(t, "EID25", promo.Code)

	// The code is the primary key, case-insensitively.
	err := s.AddPromoCode(ctx, "a1", models.PromoCode{Code: "EID25", Type: models.PromoFixed, Value: 10})
	require.ErrorIs(t, err, store.ErrPromoExists)
}

func TestVerifyPromoCodeIgnoresInactive(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddPromoCode(context.Background(), "a1", models.PromoCode{
		Code: "DEAD", Type: models.PromoFixed, Value: 10, IsActive: false,
	}))

	_, ok := s.VerifyPromoCode("DEAD")
	require.False(t, ok)
}

func TestDeletePromoCode(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddPromoCode(ctx, "a1", models.PromoCode{
		Code: "EID25", Type: models.PromoPercentage, Value: 25, IsActive: true,
	}))

	require.NoError(t, s.DeletePromoCode(ctx, "a1", "eid25"))
	require.Empty(t, s.PromoCodes())

	require.ErrorIs(t, s.DeletePromoCode(ctx, "a1", "EID25"), store.ErrNotFound)
}

func TestPromoDiscountArithmetic(t *testing.T) {
	pct := models.PromoCode{Type: models.PromoPercentage, Value: 20}
	require.Equal(t, 200, pct.Discount(1000))
	require.Equal(t, 7, pct.Discount(33)) // 6.6 rounds up

	fixed := models.PromoCode{Type: models.PromoFixed, Value: 150}
	require.Equal(t, 150, fixed.Discount(1000))
	require.Equal(t, 100, fixed.Discount(100)) // never exceeds the subtotal
}
