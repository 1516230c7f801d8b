package store

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/papon78/RoyTopUpBazar/models"
)

// PlaceOrderInput carries the checkout form. Phone and transaction id are
// required for mobile-wallet methods and ignored for wallet payment. The promo
// code, if present, must already be uppercased by the caller.
type PlaceOrderInput struct {
	PaymentMethod models.PaymentMethod
	PaymentPhone  string
	TransactionID string
	PromoCode     string
}

// PlaceOrder validates the checkout, applies the promo discount, debits the
// wallet when paying from balance, then commits the order snapshot and clears
// the cart. Validation and the wallet debit both happen before any order state
// is written: a failed debit leaves the cart and the order list untouched.
func (s *Store) PlaceOrder(ctx context.Context, sid string, in PlaceOrderInput) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return models.Order{}, err
	}
	if len(sess.cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	subtotal := 0
	for _, line := range sess.cart {
		subtotal += line.Price * line.Quantity
	}

	discount := 0
	if in.PromoCode != "" {
		promo, ok := s.findPromoLocked(in.PromoCode)
		if !ok {
			return models.Order{}, ErrInvalidPromo
		}
		discount = promo.Discount(subtotal)
	}
	total := subtotal - discount

	order := models.Order{
		ID:            fmt.Sprintf("ORD-%d", rand.Intn(100000)),
		Date:          time.Now().UTC().Format(time.RFC3339),
		Items:         slices.Clone(sess.cart),
		Total:         total,
		PaymentMethod: in.PaymentMethod,
	}
	if discount > 0 {
		order.DiscountApplied = discount
	}
	if sess.user != nil {
		order.UserID = sess.user.Email
	}

	switch in.PaymentMethod {
	case models.PaymentBkash, models.PaymentNagad:
		if in.PaymentPhone == "" || in.TransactionID == "" {
			return models.Order{}, ErrMissingPaymentInfo
		}
		// Accepted unverified; a real gateway webhook would hook in here.
		order.PaymentPhone = in.PaymentPhone
		order.TransactionID = in.TransactionID
		order.Status = models.OrderStatusPending
	case models.PaymentWallet:
		if err := s.walletPaymentLocked(ctx, sid, sess, total, order.ID); err != nil {
			return models.Order{}, err
		}
		// Funds already verified and taken, skip the pending stage.
		order.Status = models.OrderStatusProcessing
	default:
		return models.Order{}, fmt.Errorf("unsupported payment method %q", in.PaymentMethod)
	}

	// The wallet debit above persists before the order does: a failed order
	// persist leaves the debit committed, with only the ledger entry carrying
	// this order id. The mirror is best-effort, not transactional.
	s.orders = append([]models.Order{order}, s.orders...)
	if err := s.persistJSON(ctx, keyOrders, s.orders); err != nil {
		return models.Order{}, err
	}

	sess.cart = nil
	if err := s.persistJSON(ctx, keyCartPrefix+sid, sess.cart); err != nil {
		return models.Order{}, err
	}

	s.notifier.show(sid, "Order placed successfully!", models.NotifySuccess)
	return order, nil
}

// Orders returns every order, newest-first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders)
}

// UserOrders returns the orders placed by the given user email, newest-first.
func (s *Store) UserOrders(email string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == email {
			out = append(out, o)
		}
	}
	return out
}

// Order looks an order up by id, for tracking.
func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// UpdateOrderStatus sets any status on any order. No transition check: the
// admin console is allowed to override, including reopening completed orders.
func (s *Store) UpdateOrderStatus(ctx context.Context, sid, orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == orderID {
			s.orders[i].Status = status
			if err := s.persistJSON(ctx, keyOrders, s.orders); err != nil {
				return err
			}
			s.notifier.show(sid, fmt.Sprintf("Order #%s marked as %s", orderID, status), models.NotifySuccess)
			return nil
		}
	}
	return ErrNotFound
}
