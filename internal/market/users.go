package market

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/storage"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
)

func (s *Service) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// User returns the user with the given id, or nil.
func (s *Service) User(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.userIndex(id); i >= 0 {
		u := s.users[i]
		return &u
	}
	return nil
}

func (s *Service) HasUser(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userIndex(id) >= 0
}

// CurrentUser returns the selected demo persona, or nil when none is selected
// or the selection points at a user that no longer exists.
func (s *Service) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUserID == "" {
		return nil
	}
	if i := s.userIndex(s.currentUserID); i >= 0 {
		u := s.users[i]
		return &u
	}
	return nil
}

func (s *Service) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserID
}

// SetCurrentUser selects the demo persona used when no acting user is given.
func (s *Service) SetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		return nil, s.reject("set_current_user", ReasonUserNotFound, "unknown user", "userId", userID)
	}
	s.currentUserID = userID
	s.persistCurrentUser(ctx)
	u := s.users[i]
	return &u, nil
}

// SimulatePayout zeroes the user's balance. Unknown users are ignored.
func (s *Service) SimulatePayout(ctx context.Context, userID string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.userIndex(userID)
	if i < 0 {
		logger.Debugf("payout skipped, unknown user %q", userID)
		return nil
	}
	users := append([]models.User(nil), s.users...)
	users[i].Balance = decimal.Zero
	s.users = users
	s.persist(ctx, storage.KeyUsers)
	s.succeeded("payout")
	u := s.users[i]
	return &u
}
