package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idento/internal/app/service"
	"idento/internal/app/session"
	"idento/internal/common"
	"idento/internal/domain/model"
	"idento/internal/domain/repository"
)

func newAccountService() (*service.AccountService, repository.UserRepository) {
	repo := repository.NewMemoryUserRepository()
	return service.NewAccountService(repo), repo
}

func adminIdentity() session.Identity {
	return session.Identity{SessionID: "sid-admin", UserID: 999, Email: "admin@idento.com", Role: model.RoleAdmin}
}

func studentIdentity(userID int64) session.Identity {
	return session.Identity{SessionID: "sid-student", UserID: userID, Email: "student@idento.com", Role: model.RoleStudent}
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	user, err := svc.Signup(ctx, service.SignupRequest{Name: "Ada", Email: "Ada@Example.com", Password: "abc12345"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "abc12345", user.PasswordHash)

	got, err := svc.Login(ctx, "ada@example.com", "abc12345")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSignupDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, service.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "abc12345"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, service.SignupRequest{Name: "Imposter", Email: "ADA@EXAMPLE.COM", Password: "xyz98765"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestSignupWeakPassword(t *testing.T) {
	svc, _ := newAccountService()

	_, err := svc.Signup(context.Background(), service.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "short1"})
	var weak *common.WeakPasswordError
	require.ErrorAs(t, err, &weak)
	assert.Equal(t, "Password must be at least 8 characters.", weak.Reason)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, service.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "abc12345"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "ada@example.com", "wrong9999")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "abc12345")

	assert.ErrorIs(t, wrongPassword, common.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, common.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, repo := newAccountService()
	ctx := context.Background()

	user, err := svc.Signup(ctx, service.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "abc12345"})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, repo.Update(ctx, user))

	_, err = svc.Login(ctx, "ada@example.com", "abc12345")
	assert.ErrorIs(t, err, common.ErrAccountInactive)
}

func TestCreateUserAdminOnly(t *testing.T) {
	svc, repo := newAccountService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, studentIdentity(1), service.CreateUserRequest{
		Name: "Eve", Email: "eve@example.com", Role: model.RoleAdmin, Password: "abc12345",
	})
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users, "denied operation must not mutate state")

	created, err := svc.CreateUser(ctx, adminIdentity(), service.CreateUserRequest{
		Name: "Eve", Email: "Eve@Example.com", Role: model.RoleAdmin, Password: "abc12345",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, created.Role)
	assert.Equal(t, "eve@example.com", created.Email)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc, _ := newAccountService()

	_, err := svc.CreateUser(context.Background(), adminIdentity(), service.CreateUserRequest{
		Name: "Eve", Email: "eve@example.com", Role: "superuser", Password: "abc12345",
	})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newAccountService()
	ctx := context.Background()

	student, err := svc.Signup(ctx, service.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "abc12345"})
	require.NoError(t, err)
	admin, err := svc.CreateUser(ctx, adminIdentity(), service.CreateUserRequest{
		Name: "Root", Email: "root@example.com", Role: model.RoleAdmin, Password: "abc12345",
	})
	require.NoError(t, err)

	// Non-admin actors are rejected before any lookup.
	err = svc.DeleteUser(ctx, studentIdentity(student.ID), student.ID)
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	// Admin targets can never be deleted, regardless of actor.
	err = svc.DeleteUser(ctx, adminIdentity(), admin.ID)
	assert.ErrorIs(t, err, common.ErrForbiddenAdminDelete)
	_, err = repo.FindByID(ctx, admin.ID)
	assert.NoError(t, err)

	err = svc.DeleteUser(ctx, adminIdentity(), int64(12345))
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, svc.DeleteUser(ctx, adminIdentity(), student.ID))
	_, err = repo.FindByID(ctx, student.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListUsersAdminOnly(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, service.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "abc12345"})
	require.NoError(t, err)

	_, err = svc.ListUsers(ctx, studentIdentity(1))
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	users, err := svc.ListUsers(ctx, adminIdentity())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	user, err := svc.Signup(ctx, service.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "abc12345"})
	require.NoError(t, err)
	actor := studentIdentity(user.ID)

	err = svc.ChangePassword(ctx, actor, "wrong9999", "new12345")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, actor, "abc12345", "short1")
	var weak *common.WeakPasswordError
	assert.ErrorAs(t, err, &weak)

	require.NoError(t, svc.ChangePassword(ctx, actor, "abc12345", "new12345"))

	_, err = svc.Login(ctx, "ada@example.com", "new12345")
	assert.NoError(t, err)
	_, err = svc.Login(ctx, "ada@example.com", "abc12345")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestSeedAdminIdempotent(t *testing.T) {
	svc, repo := newAccountService()
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "admin@idento.com", "Idento Admin", "Admin@123"))
	require.NoError(t, svc.SeedAdmin(ctx, "admin@idento.com", "Idento Admin", "Admin@123"))

	count, err := repo.CountByRole(ctx, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	seeded, err := repo.FindByEmail(ctx, "admin@idento.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, seeded.Role)

	_, err = svc.Login(ctx, "admin@idento.com", "Admin@123")
	assert.NoError(t, err)
}

func TestSeedAdminSkippedWhenAdminExists(t *testing.T) {
	svc, repo := newAccountService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, adminIdentity(), service.CreateUserRequest{
		Name: "Root", Email: "root@example.com", Role: model.RoleAdmin, Password: "abc12345",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SeedAdmin(ctx, "admin@idento.com", "Idento Admin", "Admin@123"))

	_, err = repo.FindByEmail(ctx, "admin@idento.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
