package usecases

import (
	"context"
	stderrors "errors"

	"github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/billing"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/db"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

const minPasswordLength = 8

type SignupCommand struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	CompanyName string
}

type SignupUseCase struct {
	companies company.Repository
	users     user.Repository
	brands    brand.Repository
	txManager *db.TransactionManager
	hasher    PasswordHasher
	tokens    TokenIssuer
	billing   BillingCustomerCreator
	logger    logger.Interface
}

func NewSignupUseCase(
	companies company.Repository,
	users user.Repository,
	brands brand.Repository,
	txManager *db.TransactionManager,
	hasher PasswordHasher,
	tokens TokenIssuer,
	billing BillingCustomerCreator,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		companies: companies,
		users:     users,
		brands:    brands,
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		billing:   billing,
		logger:    logger,
	}
}

// Execute creates the company, its MASTER user and its brand in one
// transaction, then signs the user in.
func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*dto.SessionResult, error) {
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("Invalid email address")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("Password must be at least 8 characters")
	}

	exists, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.WrapDependency(err)
	}
	if exists {
		return nil, errors.NewConflictError("Email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to process password")
	}

	c, err := company.NewCompany(cmd.CompanyName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	master, err := user.NewUser(c.ID(), email, hash, cmd.FirstName, cmd.LastName, user.RoleMaster)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	b, err := brand.NewBrand(c.ID(), c.Name())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.companies.Create(txCtx, c); err != nil {
			return err
		}
		if err := uc.users.Create(txCtx, master); err != nil {
			return err
		}
		return uc.brands.Create(txCtx, b)
	})
	if err != nil {
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("Email already registered")
		}
		uc.logger.Errorw("failed to register company", "company_name", c.Name(), "error", err)
		return nil, errors.WrapDependency(err)
	}

	uc.attachBillingCustomer(ctx, c, master)

	uc.logger.Infow("company registered",
		"company_id", c.ID(),
		"user_id", master.ID(),
		"brand_id", b.ID(),
	)

	return issueSession(uc.tokens, master, uc.logger)
}

// attachBillingCustomer never fails signup; the customer can be created later.
func (uc *SignupUseCase) attachBillingCustomer(ctx context.Context, c *company.Company, master *user.User) {
	customerID, err := uc.billing.CreateCustomer(ctx, master.Email(), c.Name(), c.ID())
	if err != nil {
		if stderrors.Is(err, billing.ErrDisabled) {
			uc.logger.Debugw("billing disabled, skipping customer creation", "company_id", c.ID())
			return
		}
		uc.logger.Warnw("failed to create billing customer", "company_id", c.ID(), "error", err)
		return
	}

	if err := c.AttachBillingCustomer(customerID); err != nil {
		uc.logger.Warnw("failed to attach billing customer", "company_id", c.ID(), "error", err)
		return
	}
	if err := uc.companies.Update(ctx, c); err != nil {
		uc.logger.Warnw("failed to store billing customer", "company_id", c.ID(), "error", err)
	}
}

func issueSession(tokens TokenIssuer, u *user.User, log logger.Interface) (*dto.SessionResult, error) {
	token, expiresAt, err := tokens.Issue(authorization.Principal{
		UserID:    u.ID(),
		CompanyID: u.CompanyID(),
		Role:      u.Role().String(),
		Email:     u.Email(),
	})
	if err != nil {
		log.Errorw("failed to issue session token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to create session")
	}
	return &dto.SessionResult{
		User:      dto.ToUserResponse(u),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
