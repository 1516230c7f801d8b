package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/papon78/RoyTopUpBazar/models"
)

// Cart returns a copy of the session's cart lines.
func (s *Store) Cart(ctx context.Context, sid string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return nil, err
	}
	return slices.Clone(sess.cart), nil
}

// AddToCart merges by the (productId, optionId, playerId) triple: an existing
// line gets its quantity bumped by one, anything else becomes a new line. Two
// top-ups for different player ids stay distinct lines on purpose.
func (s *Store) AddToCart(ctx context.Context, sid string, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return err
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	for i, line := range sess.cart {
		if line.ProductID == item.ProductID && line.OptionID == item.OptionID && line.PlayerID == item.PlayerID {
			sess.cart[i].Quantity++
			if err := s.persistJSON(ctx, keyCartPrefix+sid, sess.cart); err != nil {
				return err
			}
			s.notifier.show(sid, fmt.Sprintf("%s quantity updated!", item.ProductTitle), models.NotifyInfo)
			return nil
		}
	}

	sess.cart = append(sess.cart, item)
	if err := s.persistJSON(ctx, keyCartPrefix+sid, sess.cart); err != nil {
		return err
	}
	s.notifier.show(sid, fmt.Sprintf("%s added to cart!", item.ProductTitle), models.NotifySuccess)
	return nil
}

// RemoveFromCart drops every line matching the product/option pair. Removal is
// not scoped by playerId; that matches the storefront's remove button, which
// operates on the pair.
func (s *Store) RemoveFromCart(ctx context.Context, sid, productID, optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return err
	}

	sess.cart = slices.DeleteFunc(sess.cart, func(line models.CartItem) bool {
		return line.ProductID == productID && line.OptionID == optionID
	})
	if err := s.persistJSON(ctx, keyCartPrefix+sid, sess.cart); err != nil {
		return err
	}
	s.notifier.show(sid, "Item removed from cart", models.NotifyInfo)
	return nil
}

// ClearCart empties the session's cart. Called after a successful order.
func (s *Store) ClearCart(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return err
	}
	sess.cart = nil
	return s.persistJSON(ctx, keyCartPrefix+sid, sess.cart)
}
