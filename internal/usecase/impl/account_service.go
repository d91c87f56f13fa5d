// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"patron/config"
	"patron/internal/domain/entity"
	domainerrors "patron/internal/domain/errors"
	"patron/internal/domain/repository"
	"patron/internal/domain/service"
	"patron/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	tokenSvc   service.TokenService
	codeGen    service.ReferralCodeGenerator
	commission float64
	logger     *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	TokenSvc service.TokenService
	CodeGen  service.ReferralCodeGenerator
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		tokenSvc:   params.TokenSvc,
		codeGen:    params.CodeGen,
		commission: params.Config.Referral.Commission,
		logger:     params.Logger,
	}
}

// Register orchestrates the complete registration process: uniqueness check,
// hashing, referral-code generation, sponsor crediting, persistence and token
// issuance.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrEmailPasswordRequired, "registration rejected")
	}

	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.logger.Warn("Registration with registered email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration rejected")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	referralCode := srv.codeGen.Generate()

	// Sponsor crediting runs before the new account is persisted and shares
	// no transaction with it. A failure after this point leaves the sponsor
	// credited with no matching account; two concurrent registrations against
	// the same sponsor can lose one increment. Both are accepted behavior.
	if err := srv.creditSponsor(ctx, input.ReferralCode); err != nil {
		return nil, errors.Wrap(err, "failed to credit sponsor")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Country:      input.Country,
		City:         input.City,
		ZipCode:      input.ZipCode,
		ReferralCode: referralCode,
		ReferredBy:   input.ReferralCode,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Error("Failed to create user during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenSvc.GenerateToken(newUser.ID, newUser.Email)
	if err != nil {
		srv.logger.Error("Failed to sign token during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign token during registration")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{
		Token:        token,
		ReferralCode: referralCode,
		User:         newUser,
	}, nil
}

// creditSponsor increments the sponsor's balance by the configured commission
// when the supplied code matches an account. An unknown code is not an error;
// registration proceeds silently.
func (srv *accountService) creditSponsor(ctx context.Context, sponsorCode string) error {
	if sponsorCode == "" {
		return nil
	}

	sponsor, err := srv.userRepo.FindByReferralCode(ctx, sponsorCode)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.logger.Debug("Unknown sponsor code, no commission credited", slog.String("code", sponsorCode))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up sponsor")
	}

	sponsor.Balance += srv.commission
	if err := srv.userRepo.Update(ctx, sponsor); err != nil {
		return errors.Wrap(err, "failed to persist sponsor credit")
	}

	srv.logger.Info("Sponsor commission credited",
		slog.Any("sponsorID", sponsor.ID),
		slog.Float64("commission", srv.commission),
	)

	return nil
}

// Login orchestrates the account login process.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrEmailPasswordRequired, "login rejected")
	}

	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Same error value as a password mismatch so account existence does
		// not leak through the response.
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// bcrypt comparison is the only CPU-bound step in the request.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token during login")
	}

	srv.logger.Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}
