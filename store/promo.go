package store

import (
	"context"
	"slices"
	"strings"

	"github.com/papon78/RoyTopUpBazar/models"
)

// PromoCodes returns a copy of the promo list.
func (s *Store) PromoCodes() []models.PromoCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.promos)
}

// VerifyPromoCode matches the code exactly (callers uppercase their input)
// and requires the promo to be active.
func (s *Store) VerifyPromoCode(code string) (models.PromoCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findPromoLocked(code)
}

func (s *Store) findPromoLocked(code string) (models.PromoCode, bool) {
	for _, p := range s.promos {
		if p.Code == code && p.IsActive {
			return p, true
		}
	}
	return models.PromoCode{}, false
}

// AddPromoCode inserts a promo. The code is normalized to uppercase and acts
// as the primary key.
func (s *Store) AddPromoCode(ctx context.Context, sid string, promo models.PromoCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo.Code = strings.ToUpper(promo.Code)
	for _, p := range s.promos {
		if p.Code == promo.Code {
			return ErrPromoExists
		}
	}

	s.promos = append(s.promos, promo)
	if err := s.persistJSON(ctx, keyPromos, s.promos); err != nil {
		return err
	}
	s.notifier.show(sid, "Promo Code created", models.NotifySuccess)
	return nil
}

// DeletePromoCode removes a promo by code.
func (s *Store) DeletePromoCode(ctx context.Context, sid, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	code = strings.ToUpper(code)
	before := len(s.promos)
	s.promos = slices.DeleteFunc(s.promos, func(p models.PromoCode) bool {
		return p.Code == code
	})
	if len(s.promos) == before {
		return ErrNotFound
	}
	if err := s.persistJSON(ctx, keyPromos, s.promos); err != nil {
		return err
	}
	s.notifier.show(sid, "Promo Code deleted", models.NotifyInfo)
	return nil
}
