package store

import (
	"context"
	"slices"

	"github.com/papon78/RoyTopUpBazar/models"
)

// Products returns a copy of the catalog.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

// Product looks a catalog entry up by id.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct appends a new catalog entry. Ids are unique across the catalog
// and a sellable product needs at least one priced option.
func (s *Store) AddProduct(ctx context.Context, sid string, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(p.Options) == 0 {
		return ErrNoOptions
	}
	for _, existing := range s.products {
		if existing.ID == p.ID {
			return ErrProductExists
		}
	}

	s.products = append(s.products, p)
	if err := s.persistJSON(ctx, keyProducts, s.products); err != nil {
		return err
	}
	s.notifier.show(sid, "Product created successfully", models.NotifySuccess)
	return nil
}

// UpdateProduct replaces the catalog entry with the same id.
func (s *Store) UpdateProduct(ctx context.Context, sid string, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(p.Options) == 0 {
		return ErrNoOptions
	}
	for i, existing := range s.products {
		if existing.ID == p.ID {
			s.products[i] = p
			if err := s.persistJSON(ctx, keyProducts, s.products); err != nil {
				return err
			}
			s.notifier.show(sid, "Product updated successfully", models.NotifySuccess)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteProduct removes a catalog entry by id.
func (s *Store) DeleteProduct(ctx context.Context, sid, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.products)
	s.products = slices.DeleteFunc(s.products, func(p models.Product) bool {
		return p.ID == id
	})
	if len(s.products) == before {
		return ErrNotFound
	}
	if err := s.persistJSON(ctx, keyProducts, s.products); err != nil {
		return err
	}
	s.notifier.show(sid, "Product deleted", models.NotifyInfo)
	return nil
}
