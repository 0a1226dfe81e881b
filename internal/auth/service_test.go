package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

func strptr(s string) *string { return &s }

func hash(t *testing.T, password string) []byte {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func newService(t *testing.T) (*auth.Service, *auth.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := auth.NewMockRepository(ctrl)
	return auth.NewService(repo, auth.NewTokens("test-secret", time.Hour)), repo
}

func TestService_Register(t *testing.T) {
	t.Run("CitizenGetsHashedPassword", func(t *testing.T) {
		service, repo := newService(t)
		sig := ledger.CitizenSignature(uuid.New())

		repo.EXPECT().
			CreatePrincipal(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *auth.Principal) error {
				assert.Equal(t, sig, p.Signature)
				assert.Equal(t, auth.RoleCitizen, p.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword(p.PasswordHash, []byte("hunter2")))
				return nil
			})

		p, err := service.Register(context.Background(), sig, "ada", auth.RoleCitizen, strptr("hunter2"))
		require.NoError(t, err)
		assert.Equal(t, "ada", p.Name)
	})

	t.Run("GuestWithPassword", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Register(context.Background(), ledger.GuestSignature(uuid.New()), "visitor", auth.RoleGuest, strptr("nope"))
		assert.Equal(t, fault.CodeCredentialsSet, fault.CodeOf(err))
	})

	t.Run("CitizenWithoutPassword", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Register(context.Background(), ledger.CitizenSignature(uuid.New()), "ada", auth.RoleCitizen, nil)
		assert.Equal(t, fault.CodeCredentialsMissing, fault.CodeOf(err))
	})
}

func TestService_Login(t *testing.T) {
	sig := ledger.CitizenSignature(uuid.New())

	t.Run("Success", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().
			PrincipalByName(gomock.Any(), "ada").
			Return(&auth.Principal{Signature: sig, Name: "ada", Role: auth.RoleCitizen, PasswordHash: hash(t, "hunter2")}, nil)

		token, p, err := service.Login(context.Background(), "ada", strptr("hunter2"))
		require.NoError(t, err)
		assert.Equal(t, sig, p.Signature)

		gotSig, role, err := auth.NewTokens("test-secret", time.Hour).Verify(token)
		require.NoError(t, err)
		assert.Equal(t, sig, gotSig)
		assert.Equal(t, auth.RoleCitizen, role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().
			PrincipalByName(gomock.Any(), "ada").
			Return(&auth.Principal{Signature: sig, PasswordHash: hash(t, "hunter2")}, nil)

		_, _, err := service.Login(context.Background(), "ada", strptr("letmein"))
		assert.Equal(t, fault.CodeInvalidPassword, fault.CodeOf(err))
	})

	t.Run("GuestNeedsNoPassword", func(t *testing.T) {
		service, repo := newService(t)
		guest := ledger.GuestSignature(uuid.New())
		repo.EXPECT().
			PrincipalByName(gomock.Any(), "visitor").
			Return(&auth.Principal{Signature: guest, Name: "visitor", Role: auth.RoleGuest}, nil)

		token, p, err := service.Login(context.Background(), "visitor", nil)
		require.NoError(t, err)
		assert.Equal(t, guest, p.Signature)
		assert.NotEmpty(t, token)
	})

	t.Run("UnknownName", func(t *testing.T) {
		service, repo := newService(t)
		repo.EXPECT().
			PrincipalByName(gomock.Any(), "ghost").
			Return(nil, fault.New(fault.CodeUserNotFound, "no principal named %q", "ghost"))

		_, _, err := service.Login(context.Background(), "ghost", strptr("x"))
		assert.Equal(t, fault.CodeUserNotFound, fault.CodeOf(err))
	})
}

func TestService_CheckPassword(t *testing.T) {
	service, repo := newService(t)
	sig := ledger.CompanySignature(uuid.New())

	repo.EXPECT().
		Principal(gomock.Any(), sig).
		Return(&auth.Principal{Signature: sig, PasswordHash: hash(t, "s3cret")}, nil).
		Times(2)

	ok, err := service.CheckPassword(context.Background(), sig, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.CheckPassword(context.Background(), sig, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokens_Verify(t *testing.T) {
	sig := ledger.CitizenSignature(uuid.New())
	p := &auth.Principal{Signature: sig, Role: auth.RoleBank}

	t.Run("RoundTrip", func(t *testing.T) {
		tokens := auth.NewTokens("secret", time.Hour)
		token, err := tokens.Issue(p)
		require.NoError(t, err)

		gotSig, role, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, sig, gotSig)
		assert.Equal(t, auth.RoleBank, role)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := auth.NewTokens("secret", time.Hour).Issue(p)
		require.NoError(t, err)

		_, _, err = auth.NewTokens("other", time.Hour).Verify(token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		tokens := auth.NewTokens("secret", -time.Minute)
		token, err := tokens.Issue(p)
		require.NoError(t, err)

		_, _, err = tokens.Verify(token)
		assert.Error(t, err)
	})
}

func TestAssertRole(t *testing.T) {
	p := &auth.Principal{Role: auth.RoleCompany}

	assert.NoError(t, auth.AssertRole(p, auth.RoleCompany))
	assert.NoError(t, auth.AssertRole(p, auth.RoleBank, auth.RoleCompany))

	err := auth.AssertRole(p, auth.RoleBank)
	assert.Equal(t, fault.CodePermissionDenied, fault.CodeOf(err))
}
