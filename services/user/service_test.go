package user

import (
	"strings"
	"testing"

	"tourmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.byEmail[strings.ToLower(email)], nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

// staticVerifier reports a fixed verification status for every email.
type staticVerifier struct {
	verified bool
}

func (v staticVerifier) IsEmailVerified(string) (bool, error) { return v.verified, nil }

func newTestUserService(verified bool) (*DefaultUserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return &DefaultUserService{Repo: repo, Verifier: staticVerifier{verified: verified}}, repo
}

func TestRegisterUser(t *testing.T) {
	svc, _ := newTestUserService(true)

	resp, err := svc.RegisterUser("Asha", "Asha@Example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User["email"])
	assert.Equal(t, models.RoleUser, resp.User["role"])
	assert.NotContains(t, resp.User, "password")

	// Password round-trips through login.
	login, err := svc.AuthenticateUser("asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, resp.User["id"], login.User["id"])
}

func TestRegisterRequiresVerifiedEmail(t *testing.T) {
	svc, _ := newTestUserService(false)
	_, err := svc.RegisterUser("Asha", "asha@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(true)

	_, err := svc.RegisterUser("Asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.RegisterUser("Impostor", "ASHA@example.com", "different1")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestUserService(true)

	_, err := svc.RegisterUser("", "asha@example.com", "secret123")
	assert.True(t, IsValidation(err))

	_, err = svc.RegisterUser("Asha", "asha@example.com", "tiny")
	assert.True(t, IsValidation(err))
}

func TestAuthenticateUserWrongPassword(t *testing.T) {
	svc, _ := newTestUserService(true)

	_, err := svc.RegisterUser("Asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.AuthenticateUser("asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AuthenticateUser("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateAdminRejectsRegularUser(t *testing.T) {
	svc, _ := newTestUserService(true)

	_, err := svc.RegisterUser("Asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.AuthenticateAdmin("asha@example.com", "secret123")
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestGetUserByID(t *testing.T) {
	svc, _ := newTestUserService(true)

	resp, err := svc.RegisterUser("Asha", "asha@example.com", "secret123")
	require.NoError(t, err)

	usr, err := svc.GetUserByID(resp.User["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", usr.Email)

	_, err = svc.GetUserByID("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
