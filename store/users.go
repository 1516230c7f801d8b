package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/papon78/RoyTopUpBazar/models"
)

// LoginProfile is what the login form collects. There is no password check:
// login is an upsert by email, matching the current product behavior.
type LoginProfile struct {
	Name   string
	Email  string
	Phone  string
	Avatar string
}

// UserUpdate merges non-nil fields into the session user and its registry
// entry in one step.
type UserUpdate struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// Login finds the registry user by email, or registers a new one. A banned
// account gets no session and no state change.
func (s *Store) Login(ctx context.Context, sid string, profile LoginProfile) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range s.allUsers {
		if u.Email == profile.Email {
			if u.IsBanned {
				s.notifier.show(sid, "This account has been banned by Admin.", models.NotifyError)
				return models.User{}, ErrBanned
			}
			existing := u
			sess.user = &existing
			if err := s.persistJSON(ctx, keyUserPrefix+sid, existing); err != nil {
				return models.User{}, err
			}
			s.notifier.show(sid, fmt.Sprintf("Welcome back, %s!", existing.Name), models.NotifySuccess)
			return existing, nil
		}
	}

	newUser := models.User{
		ID:            fmt.Sprintf("U-%d", time.Now().UnixMilli()),
		Name:          profile.Name,
		Email:         profile.Email,
		Phone:         profile.Phone,
		Avatar:        profile.Avatar,
		WalletBalance: 0,
		Role:          models.RoleUser,
	}
	s.allUsers = append(s.allUsers, newUser)
	if err := s.persistJSON(ctx, keyAllUsers, s.allUsers); err != nil {
		return models.User{}, err
	}
	sess.user = &newUser
	if err := s.persistJSON(ctx, keyUserPrefix+sid, newUser); err != nil {
		return models.User{}, err
	}
	s.notifier.show(sid, fmt.Sprintf("Welcome, %s!", newUser.Name), models.NotifySuccess)
	return newUser, nil
}

// Logout clears only the session user; the cart stays.
func (s *Store) Logout(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return err
	}
	sess.user = nil
	if err := s.p.Delete(ctx, keyUserPrefix+sid); err != nil {
		return err
	}
	s.notifier.show(sid, "Logged out successfully", models.NotifyInfo)
	return nil
}

// CurrentUser returns the session user, if any.
func (s *Store) CurrentUser(ctx context.Context, sid string) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return models.User{}, false, err
	}
	if sess.user == nil {
		return models.User{}, false, nil
	}
	return *sess.user, true, nil
}

// UpdateUser merges profile fields into the session user and propagates the
// same merge to the registry entry so the two copies never diverge.
func (s *Store) UpdateUser(ctx context.Context, sid string, upd UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return models.User{}, err
	}
	if sess.user == nil {
		return models.User{}, ErrNotLoggedIn
	}

	updated := *sess.user
	if upd.Name != nil {
		updated.Name = *upd.Name
	}
	if upd.Phone != nil {
		updated.Phone = *upd.Phone
	}
	if upd.Avatar != nil {
		updated.Avatar = *upd.Avatar
	}

	sess.user = &updated
	if err := s.persistJSON(ctx, keyUserPrefix+sid, updated); err != nil {
		return models.User{}, err
	}
	if err := s.updateRegistryLocked(ctx, updated); err != nil {
		return models.User{}, err
	}
	s.notifier.show(sid, "Profile updated successfully", models.NotifySuccess)
	return updated, nil
}

// AdminLogin checks the fixed credential pair and, on success, installs a
// synthetic admin user on the session. The admin never enters the registry.
func (s *Store) AdminLogin(ctx context.Context, sid, username, password string) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username != s.admin.Username || password != s.admin.Password {
		return models.User{}, false, nil
	}

	sess, err := s.getSession(ctx, sid)
	if err != nil {
		return models.User{}, false, err
	}
	adminUser := models.User{
		Name:  s.admin.Name,
		Email: s.admin.Email,
		Role:  models.RoleAdmin,
	}
	sess.user = &adminUser
	if err := s.persistJSON(ctx, keyUserPrefix+sid, adminUser); err != nil {
		return models.User{}, false, err
	}
	return adminUser, true, nil
}

// AllUsers returns a copy of the registry.
func (s *Store) AllUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.allUsers)
}

// UpdateUserBalance is the admin credit/debit on a registry user. Debits are
// floor-clamped at zero. Any live session of that user sees the change too.
// The toast lands on the acting admin's session.
func (s *Store) UpdateUserBalance(ctx context.Context, sid, email string, amount int, typ models.TransactionType) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return models.User{}, ErrInvalidAmount
	}

	idx := -1
	for i, u := range s.allUsers {
		if u.Email == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.User{}, ErrNotFound
	}

	updated := s.allUsers[idx]
	if typ == models.TransactionCredit {
		updated.WalletBalance += amount
	} else {
		updated.WalletBalance -= amount
		if updated.WalletBalance < 0 {
			updated.WalletBalance = 0
		}
	}
	s.allUsers[idx] = updated
	if err := s.persistJSON(ctx, keyAllUsers, s.allUsers); err != nil {
		return models.User{}, err
	}

	// Mirror into every live session of this user.
	for sid, sess := range s.sessions {
		if sess.user != nil && sess.user.Email == email {
			u := updated
			sess.user = &u
			if err := s.persistJSON(ctx, keyUserPrefix+sid, u); err != nil {
				return models.User{}, err
			}
		}
	}

	s.notifier.show(sid, fmt.Sprintf("User wallet %sed by ৳%d", typ, amount), models.NotifySuccess)
	return updated, nil
}

// ToggleUserBan flips a registry user's ban flag. An existing session is not
// terminated; the ban bites on the next login attempt.
func (s *Store) ToggleUserBan(ctx context.Context, sid, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.allUsers {
		if u.Email == email {
			s.allUsers[i].IsBanned = !u.IsBanned
			if err := s.persistJSON(ctx, keyAllUsers, s.allUsers); err != nil {
				return models.User{}, err
			}
			if s.allUsers[i].IsBanned {
				s.notifier.show(sid, "User Banned", models.NotifyInfo)
			} else {
				s.notifier.show(sid, "User Unbanned", models.NotifyInfo)
			}
			return s.allUsers[i], nil
		}
	}
	return models.User{}, ErrNotFound
}
