// internal/domain/session/store.go
package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// Persister mirrors the authenticated profile to durable storage.
// Implementations never return errors; unreadable persisted state is absent.
type Persister interface {
	SaveUser(p Profile)
	LoadUser() *Profile
	DeleteUser()
}

// Store manages the current-user session of one client context. The session
// moves between loading, anonymous, and authenticated; login, registration,
// and profile updates pass through a simulated-latency loading window and
// resolve to exactly one of success or failure. Overlapping calls on the
// same store are serialized, so state is always the outcome of the last
// call to complete.
type Store struct {
	mu     sync.Mutex // guards state
	callMu sync.Mutex // serializes in-flight auth calls

	state     State
	persister Persister
	notifier  notify.Notifier
	policy    *auth.CredentialPolicy
	latency   time.Duration
}

// NewStore creates a session store and hydrates it from persistence. The
// store starts in loading and resolves to anonymous or authenticated before
// NewStore returns.
func NewStore(persister Persister, notifier notify.Notifier, policy *auth.CredentialPolicy, latency time.Duration) *Store {
	s := &Store{
		state:     State{IsLoading: true},
		persister: persister,
		notifier:  notifier,
		policy:    policy,
		latency:   latency,
	}

	if user := persister.LoadUser(); user != nil {
		s.state = State{User: user, IsAuthenticated: true}
	} else {
		s.state = State{}
	}

	return s
}

// Current returns a copy of the session state
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	return state
}

// Login authenticates against the mock credential policy. It returns the
// granted profile, or nil on failure; failures surface only as a notification
// plus the nil result. The returned profile is the caller's own copy, valid
// even if another call resets the store before the caller reads it.
func (s *Store) Login(email, password string) *Profile {
	s.callMu.Lock()
	defer s.callMu.Unlock()

	s.setLoading(true)
	s.simulateLatency()

	switch s.policy.Authenticate(email, password) {
	case auth.GrantAdmin:
		user := adminProfile()
		s.persister.SaveUser(user)
		s.setAuthenticated(user)

		s.notifier.Notify(notify.Notification{
			Title:       "Admin login successful",
			Description: fmt.Sprintf("Welcome back, %s!", user.FirstName),
		})
		return &user

	case auth.GrantUser:
		user := genericProfile(email)
		s.persister.SaveUser(user)
		s.setAuthenticated(user)

		s.notifier.Notify(notify.Notification{
			Title:       "Login successful",
			Description: fmt.Sprintf("Welcome back, %s!", user.FirstName),
		})
		return &user

	default:
		s.setLoading(false)

		s.notifier.Notify(notify.Notification{
			Title:       "Login failed",
			Description: "Invalid email or password.",
			Variant:     notify.VariantDestructive,
		})
		return nil
	}
}

// Register creates a new account for well-formed input and returns the new
// profile. Registration always succeeds; the synthesized identity is
// collision-resistant.
func (s *Store) Register(data RegisterData) *Profile {
	s.callMu.Lock()
	defer s.callMu.Unlock()

	s.setLoading(true)
	s.simulateLatency()

	user := Profile{
		ID:        "user-" + uuid.NewString(),
		Email:     strings.ToLower(data.Email),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		AvatarURL: avatarURL(data.FirstName),
		CreatedAt: time.Now().UTC(),
	}

	s.persister.SaveUser(user)
	s.setAuthenticated(user)

	s.notifier.Notify(notify.Notification{
		Title:       "Registration successful",
		Description: fmt.Sprintf("Welcome, %s!", user.FirstName),
	})
	return &user
}

// UpdateProfile merges partial fields into the current profile and returns
// the merged result. Email is not mutable through this path. Returns nil when
// no user is authenticated.
func (s *Store) UpdateProfile(update ProfileUpdate) *Profile {
	s.callMu.Lock()
	defer s.callMu.Unlock()

	s.mu.Lock()
	if s.state.User == nil {
		s.mu.Unlock()
		return nil
	}
	user := *s.state.User
	s.mu.Unlock()

	s.setLoading(true)
	s.simulateLatency()

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.PhoneNumber != nil {
		user.PhoneNumber = *update.PhoneNumber
	}
	if update.Address != nil {
		addr := *update.Address
		user.Address = &addr
	}

	s.persister.SaveUser(user)
	s.setAuthenticated(user)

	s.notifier.Notify(notify.Notification{
		Title:       "Profile updated",
		Description: "Your profile has been successfully updated.",
	})
	return &user
}

// Logout resets the session to anonymous and deletes the persisted record.
// Unlike the other transitions it is immediate, with no loading window.
func (s *Store) Logout() {
	s.persister.DeleteUser()

	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()

	s.notifier.Notify(notify.Notification{
		Title:       "Logged out",
		Description: "You have been successfully logged out.",
	})
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	s.state.IsLoading = loading
	s.mu.Unlock()
}

func (s *Store) setAuthenticated(user Profile) {
	s.mu.Lock()
	s.state = State{User: &user, IsAuthenticated: true}
	s.mu.Unlock()
}

func (s *Store) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// adminProfile is the fixed privileged identity of the mock policy
func adminProfile() Profile {
	return Profile{
		ID:          "admin-1",
		Email:       "admin@example.com",
		FirstName:   "Admin",
		LastName:    "User",
		AvatarURL:   avatarURL("Admin"),
		PhoneNumber: "555-987-6543",
		IsAdmin:     true,
		CreatedAt:   time.Now().UTC(),
		Address: &Address{
			Street:  "456 Admin St",
			City:    "Adminville",
			State:   "CA",
			ZipCode: "54321",
			Country: "United States",
		},
	}
}

// genericProfile is the demo identity granted for the generic password,
// carrying whatever email the caller logged in with
func genericProfile(email string) Profile {
	return Profile{
		ID:          "user-1",
		Email:       strings.ToLower(email),
		FirstName:   "John",
		LastName:    "Doe",
		AvatarURL:   avatarURL("John"),
		PhoneNumber: "555-123-4567",
		CreatedAt:   time.Now().UTC(),
		Address: &Address{
			Street:  "123 Main St",
			City:    "Anytown",
			State:   "CA",
			ZipCode: "12345",
			Country: "United States",
		},
	}
}

func avatarURL(seed string) string {
	return "https://api.dicebear.com/6.x/avataaars/svg?seed=" + seed
}
