package store

import (
	"context"

	"github.com/papon78/RoyTopUpBazar/models"
)

// SiteNotice returns the global banner text shown on the landing page.
func (s *Store) SiteNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// UpdateSiteNotice replaces the banner text. Stored raw, not JSON.
func (s *Store) UpdateSiteNotice(ctx context.Context, sid, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notice = text
	if err := s.p.Set(ctx, keyNotice, text); err != nil {
		return err
	}
	s.notifier.show(sid, "Notice Board updated", models.NotifySuccess)
	return nil
}
