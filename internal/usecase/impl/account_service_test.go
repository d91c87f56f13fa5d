package impl

import (
	"context"
	"regexp"
	"testing"

	"patron/config"
	domainerrors "patron/internal/domain/errors"
	"patron/internal/infra/auth"
	"patron/internal/infra/referral"
	"patron/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var referralCodePattern = regexp.MustCompile(`^REF-[A-Z0-9]{6}$`)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	userRepo *fakeUserRepo
	tokenSvc *fakeTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Referral.CodePrefix = "REF-"
	cfg.Referral.Commission = 1000

	userRepo := newFakeUserRepo()
	tokenSvc := &fakeTokenService{}

	service := NewAccountService(AccountServiceParams{
		UserRepo: userRepo,
		Hasher:   auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenSvc: tokenSvc,
		CodeGen:  referral.NewCodeGenerator(cfg),
		Config:   cfg,
		Logger:   discardLogger(),
	})

	return accountServiceFixtures{
		service:  service,
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

func registerAccount(t *testing.T, fx accountServiceFixtures, email, password, sponsorCode string) *usecase.RegisterOutput {
	t.Helper()

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:        email,
		Password:     password,
		ReferralCode: sponsorCode,
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	return output
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	output := registerAccount(t, fx, "alice@example.com", "Password123!", "")

	assert.Regexp(t, referralCodePattern, output.ReferralCode)
	assert.Equal(t, output.ReferralCode, output.User.ReferralCode)
	assert.Equal(t, "token-"+output.User.ID.String(), output.Token)
	assert.Empty(t, output.User.ReferredBy)
	assert.Zero(t, output.User.Balance)
	assert.NotEqual(t, "Password123!", output.User.PasswordHash, "password must never be stored in clear")
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	for _, input := range []*usecase.RegisterInput{
		{Email: "", Password: "Password123!"},
		{Email: "alice@example.com", Password: ""},
		{Email: "", Password: ""},
	} {
		output, err := fx.service.Register(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrEmailPasswordRequired)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	first := registerAccount(t, fx, "alice@example.com", "Password123!", "")

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "different-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)

	// The original account is untouched by the rejected attempt.
	stored, err := fx.userRepo.FindByID(context.Background(), first.User.ID)
	require.NoError(t, err)
	assert.Equal(t, first.User.PasswordHash, stored.PasswordHash)
	assert.Equal(t, first.User.ReferralCode, stored.ReferralCode)
}

func TestAccountService_Register_SponsorCreditedOnce(t *testing.T) {
	fx := createTestAccountService(t)

	sponsor := registerAccount(t, fx, "alice@example.com", "Password123!", "")
	referred := registerAccount(t, fx, "bob@example.com", "Password123!", sponsor.ReferralCode)

	assert.Equal(t, float64(1000), fx.userRepo.balanceOf(sponsor.User.ID))
	assert.Equal(t, sponsor.ReferralCode, referred.User.ReferredBy)
	assert.Zero(t, fx.userRepo.balanceOf(referred.User.ID))
}

func TestAccountService_Register_UnknownSponsorCode(t *testing.T) {
	fx := createTestAccountService(t)

	sponsor := registerAccount(t, fx, "alice@example.com", "Password123!", "")
	referred := registerAccount(t, fx, "bob@example.com", "Password123!", sponsor.ReferralCode)

	// A code matching nothing credits nobody and does not block registration.
	output := registerAccount(t, fx, "carol@example.com", "Password123!", "REF-NOPE00")

	assert.Equal(t, "REF-NOPE00", output.User.ReferredBy)
	assert.Equal(t, float64(1000), fx.userRepo.balanceOf(sponsor.User.ID))
	assert.Zero(t, fx.userRepo.balanceOf(referred.User.ID))
	assert.Zero(t, fx.userRepo.balanceOf(output.User.ID))
}

func TestAccountService_Register_SponsorCreditSurvivesFailedPersist(t *testing.T) {
	fx := createTestAccountService(t)

	sponsor := registerAccount(t, fx, "alice@example.com", "Password123!", "")

	// Crediting happens before the new account is written and is never rolled
	// back, so a store failure leaves the sponsor already paid.
	fx.userRepo.createErr = errors.New("connection reset")

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:        "bob@example.com",
		Password:     "Password123!",
		ReferralCode: sponsor.ReferralCode,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, float64(1000), fx.userRepo.balanceOf(sponsor.User.ID))
}

func TestAccountService_Register_StoreLookupFailure(t *testing.T) {
	fx := createTestAccountService(t)
	fx.userRepo.findErr = errors.New("connection reset")

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.NotErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	registered := registerAccount(t, fx, "alice@example.com", "Password123!", "")

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "token-"+registered.User.ID.String(), output.Token)
	assert.Equal(t, registered.User.ID, output.User.ID)
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "alice@example.com"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailPasswordRequired)
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAccountService(t)

	registerAccount(t, fx, "alice@example.com", "Password123!", "")

	// Unknown email and wrong password must be indistinguishable to the caller.
	_, unknownEmailErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})
	_, wrongPasswordErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "not-the-password",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Register_CodesAreUniquePerAccount(t *testing.T) {
	fx := createTestAccountService(t)

	seen := map[string]struct{}{}
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com"} {
		output := registerAccount(t, fx, email, "Password123!", "")

		assert.Regexp(t, referralCodePattern, output.ReferralCode)
		_, dup := seen[output.ReferralCode]
		assert.False(t, dup, "generated code %s twice", output.ReferralCode)
		seen[output.ReferralCode] = struct{}{}
	}
}
