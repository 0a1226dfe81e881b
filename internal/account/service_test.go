package account_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/schuelerstaat/statebank/internal/account"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

func TestService_Open(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := account.NewMockRepository(ctrl)
		service := account.NewService(repo)
		owner := ledger.CitizenSignature(uuid.New())

		repo.EXPECT().
			CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *account.Account) error {
				assert.Equal(t, owner, a.Owner)
				assert.True(t, a.Balance.Equal(decimal.RequireFromString("50")))
				assert.True(t, a.RedemptionBalance.IsZero())
				return nil
			})

		a, err := service.Open(context.Background(), owner, decimal.RequireFromString("50"))
		require.NoError(t, err)
		assert.Equal(t, owner, a.Owner)
	})

	t.Run("NegativeBalance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := account.NewService(account.NewMockRepository(ctrl))

		_, err := service.Open(context.Background(), ledger.GuestSignature(uuid.New()), decimal.RequireFromString("-1"))
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})

	t.Run("MissingOwner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := account.NewService(account.NewMockRepository(ctrl))

		_, err := service.Open(context.Background(), ledger.UserSignature{}, decimal.Zero)
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := account.NewMockRepository(ctrl)
	service := account.NewService(repo)
	owner := ledger.CompanySignature(uuid.New())

	repo.EXPECT().
		Account(gomock.Any(), owner).
		Return(&account.Account{Owner: owner, Balance: decimal.RequireFromString("12.30")}, nil)

	a, err := service.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("12.3")))
}
