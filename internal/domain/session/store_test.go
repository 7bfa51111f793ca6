package session

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

type fakePersister struct {
	mu     sync.Mutex
	stored *Profile
	saves  int
}

func (f *fakePersister) SaveUser(p Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = &p
	f.saves++
}

func (f *fakePersister) LoadUser() *Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored
}

func (f *fakePersister) DeleteUser() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = nil
}

func (f *fakePersister) last() *Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored
}

func testPolicy(t *testing.T) *auth.CredentialPolicy {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.AdminEmail = "admin@example.com"
	cfg.Auth.AdminPassword = "adminpass"
	cfg.Auth.GenericPassword = "password"
	cfg.Auth.BcryptCost = 4

	policy, err := auth.NewCredentialPolicy(cfg)
	require.NoError(t, err)
	return policy
}

func newTestStore(t *testing.T) (*Store, *fakePersister, *notify.Recorder) {
	t.Helper()
	persister := &fakePersister{}
	recorder := &notify.Recorder{}
	return NewStore(persister, recorder, testPolicy(t), 0), persister, recorder
}

func TestNewStoreStartsAnonymous(t *testing.T) {
	store, _, _ := newTestStore(t)

	state := store.Current()
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
}

func TestNewStoreHydratesFromPersistedProfile(t *testing.T) {
	persister := &fakePersister{
		stored: &Profile{ID: "user-1", Email: "shopper@example.com", FirstName: "John"},
	}

	store := NewStore(persister, &notify.Recorder{}, testPolicy(t), 0)

	state := store.Current()
	require.NotNil(t, state.User)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "user-1", state.User.ID)
}

func TestLoginAdminCredentials(t *testing.T) {
	store, persister, recorder := newTestStore(t)

	granted := store.Login("admin@example.com", "adminpass")
	require.NotNil(t, granted)
	assert.Equal(t, "admin-1", granted.ID)

	state := store.Current()
	require.NotNil(t, state.User)
	assert.True(t, state.User.IsAdmin)
	assert.Equal(t, "admin-1", state.User.ID)
	assert.Equal(t, "Admin", state.User.FirstName)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)

	require.NotNil(t, persister.stored)
	assert.Equal(t, "admin-1", persister.stored.ID)

	n, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "Admin login successful", n.Title)
}

func TestLoginGenericPasswordGrantsRegularIdentityWithCallerEmail(t *testing.T) {
	store, _, recorder := newTestStore(t)

	granted := store.Login("Shopper@Example.com", "password")
	require.NotNil(t, granted)
	assert.Equal(t, "shopper@example.com", granted.Email)

	state := store.Current()
	require.NotNil(t, state.User)
	assert.False(t, state.User.IsAdmin)
	assert.Equal(t, "user-1", state.User.ID)
	assert.Equal(t, "shopper@example.com", state.User.Email)
	assert.Equal(t, "John", state.User.FirstName)

	n, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "Login successful", n.Title)
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	store, persister, recorder := newTestStore(t)

	assert.Nil(t, store.Login("shopper@example.com", "wrong"))

	state := store.Current()
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Nil(t, persister.stored)

	n, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "Login failed", n.Title)
	assert.Equal(t, notify.VariantDestructive, n.Variant)
}

func TestLoginAdminEmailRejectsGenericPassword(t *testing.T) {
	store, _, _ := newTestStore(t)

	assert.Nil(t, store.Login("admin@example.com", "password"))
	assert.False(t, store.Current().IsAuthenticated)
}

func TestRegisterAlwaysSucceedsWithFreshIdentity(t *testing.T) {
	store, persister, recorder := newTestStore(t)

	created := store.Register(RegisterData{
		Email:     "New@Example.com",
		Password:  "whatever",
		FirstName: "Jane",
		LastName:  "Smith",
	})
	require.NotNil(t, created)
	assert.Equal(t, "new@example.com", created.Email)

	state := store.Current()
	require.NotNil(t, state.User)
	assert.True(t, strings.HasPrefix(state.User.ID, "user-"))
	assert.NotEqual(t, "user-1", state.User.ID)
	assert.Equal(t, "new@example.com", state.User.Email)
	assert.Equal(t, "Jane", state.User.FirstName)
	assert.False(t, state.User.CreatedAt.IsZero())
	assert.NotNil(t, persister.stored)

	n, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "Registration successful", n.Title)
}

func TestRegisterGeneratesUniqueIDsAcrossCalls(t *testing.T) {
	store, _, _ := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		store.Register(RegisterData{Email: "a@b.com", FirstName: "A", LastName: "B"})
		id := store.Current().User.ID
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUpdateProfileMergesPartialFields(t *testing.T) {
	store, persister, _ := newTestStore(t)
	require.NotNil(t, store.Login("shopper@example.com", "password"))

	first := "Johnny"
	phone := "555-000-1111"
	addr := Address{Street: "9 New Rd", City: "Newtown", State: "NY", ZipCode: "10001", Country: "USA"}

	merged := store.UpdateProfile(ProfileUpdate{
		FirstName:   &first,
		PhoneNumber: &phone,
		Address:     &addr,
	})
	require.NotNil(t, merged)
	assert.Equal(t, "Johnny", merged.FirstName)

	state := store.Current()
	require.NotNil(t, state.User)
	assert.Equal(t, "Johnny", state.User.FirstName)
	assert.Equal(t, "Doe", state.User.LastName)
	assert.Equal(t, "555-000-1111", state.User.PhoneNumber)
	require.NotNil(t, state.User.Address)
	assert.Equal(t, "Newtown", state.User.Address.City)
	// Email is not mutable through profile updates
	assert.Equal(t, "shopper@example.com", state.User.Email)

	require.NotNil(t, persister.stored)
	assert.Equal(t, "Johnny", persister.stored.FirstName)
}

func TestUpdateProfileWithoutUserFails(t *testing.T) {
	store, _, _ := newTestStore(t)

	first := "Ghost"
	assert.Nil(t, store.UpdateProfile(ProfileUpdate{FirstName: &first}))
}

func TestLogoutResetsStateAndDeletesPersistedRecord(t *testing.T) {
	store, persister, recorder := newTestStore(t)
	require.NotNil(t, store.Login("shopper@example.com", "password"))
	require.NotNil(t, persister.stored)

	store.Logout()

	state := store.Current()
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Nil(t, persister.stored)

	n, ok := recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "Logged out", n.Title)
}

func TestCurrentReturnsCopy(t *testing.T) {
	store, _, _ := newTestStore(t)
	require.NotNil(t, store.Login("shopper@example.com", "password"))

	state := store.Current()
	state.User.FirstName = "Mutated"

	assert.Equal(t, "John", store.Current().User.FirstName)
}

func TestLoginReturnsCallerOwnedProfile(t *testing.T) {
	store, _, _ := newTestStore(t)

	granted := store.Login("shopper@example.com", "password")
	require.NotNil(t, granted)

	// A logout racing in before the caller reads the grant must not
	// invalidate it
	store.Logout()

	assert.Nil(t, store.Current().User)
	assert.Equal(t, "user-1", granted.ID)
	assert.Equal(t, "shopper@example.com", granted.Email)

	granted.FirstName = "Mutated"
	require.NotNil(t, store.Login("shopper@example.com", "password"))
	assert.Equal(t, "John", store.Current().User.FirstName)
}

func TestOverlappingAuthCallsSerialize(t *testing.T) {
	persister := &fakePersister{}
	store := NewStore(persister, &notify.Recorder{}, testPolicy(t), 20*time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		store.Login("admin@example.com", "adminpass")
	}()
	go func() {
		defer wg.Done()
		store.Login("shopper@example.com", "password")
	}()
	wg.Wait()

	state := store.Current()
	require.NotNil(t, state.User)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)

	// The surviving state is one complete grant, never a blend of the two
	switch state.User.ID {
	case "admin-1":
		assert.True(t, state.User.IsAdmin)
		assert.Equal(t, "admin@example.com", state.User.Email)
		assert.Equal(t, "Admin", state.User.FirstName)
	case "user-1":
		assert.False(t, state.User.IsAdmin)
		assert.Equal(t, "shopper@example.com", state.User.Email)
		assert.Equal(t, "John", state.User.FirstName)
	default:
		t.Fatalf("unexpected user id %s", state.User.ID)
	}

	saved := persister.last()
	require.NotNil(t, saved)
	assert.Equal(t, state.User.ID, saved.ID)
	assert.Equal(t, state.User.Email, saved.Email)
}

func TestOverlappingRegisterCallsSerialize(t *testing.T) {
	persister := &fakePersister{}
	store := NewStore(persister, &notify.Recorder{}, testPolicy(t), 20*time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		store.Register(RegisterData{Email: "jane@example.com", FirstName: "Jane", LastName: "Smith"})
	}()
	go func() {
		defer wg.Done()
		store.Register(RegisterData{Email: "mark@example.com", FirstName: "Mark", LastName: "Jones"})
	}()
	wg.Wait()

	state := store.Current()
	require.NotNil(t, state.User)
	assert.False(t, state.IsLoading)

	switch state.User.Email {
	case "jane@example.com":
		assert.Equal(t, "Jane", state.User.FirstName)
		assert.Equal(t, "Smith", state.User.LastName)
	case "mark@example.com":
		assert.Equal(t, "Mark", state.User.FirstName)
		assert.Equal(t, "Jones", state.User.LastName)
	default:
		t.Fatalf("unexpected email %s", state.User.Email)
	}

	saved := persister.last()
	require.NotNil(t, saved)
	assert.Equal(t, state.User.ID, saved.ID)
}
