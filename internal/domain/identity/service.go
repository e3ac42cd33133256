// Package identity authenticates users against the users collection and
// owns the session's current-user pointer. The pointer, not any token, is
// the sole authorization signal: clearing it on logout revokes access.
package identity

import (
	"encoding/json"
	"fmt"

	"ems/internal/storage"
)

const currentUserKey = storage.KeyPrefix + "currentUser"

type Service struct {
	repo *storage.Repository
}

func NewService(repo *storage.Repository) *Service {
	return &Service{repo: repo}
}

// Login matches email and password exactly, case-sensitive, against the
// users collection and stores the matched user (minus password) as the
// session's current user. A miss is ErrInvalidCredentials; which of the
// two fields was wrong is deliberately not disclosed.
func (s *Service) Login(email, password string) (User, error) {
	var users []User
	if err := s.repo.ReadCollection(storage.CollectionUsers, &users); err != nil {
		return User{}, err
	}

	for _, user := range users {
		if user.Email == email && user.Password == password {
			pointer := user
			pointer.Password = ""
			raw, err := json.Marshal(pointer)
			if err != nil {
				return User{}, fmt.Errorf("encode current user: %w", err)
			}
			if err := s.repo.Store().Set(currentUserKey, raw); err != nil {
				return User{}, fmt.Errorf("store current user: %w", err)
			}
			return pointer, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// CurrentUser reads the session pointer. The second return is false when
// nobody is logged in.
func (s *Service) CurrentUser() (User, bool, error) {
	raw, ok, err := s.repo.Store().Get(currentUserKey)
	if err != nil {
		return User{}, false, err
	}
	if !ok {
		return User{}, false, nil
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return User{}, false, fmt.Errorf("current user: %w: %v", storage.ErrCorrupt, err)
	}
	return user, true, nil
}

// Logout clears the current-user pointer only; collections are untouched.
func (s *Service) Logout() error {
	return s.repo.Store().Remove(currentUserKey)
}

// Authorize is an exact role-string comparison. There is no hierarchy:
// Admin does not imply Employee.
func Authorize(user User, requiredRole string) bool {
	return user.Role == requiredRole
}

// HomePath returns the landing view for a role. A user gated out of a
// mismatched view is pointed at their own role's home rather than failed
// outright.
func HomePath(role string) string {
	if role == RoleAdmin {
		return "/admin/dashboard"
	}
	return "/employee/dashboard"
}
