package user

import (
	"github.com/brandvault/brandvault/internal/shared/errors"
)

// EnsureCanManageTeam rejects non-MASTER actors.
func EnsureCanManageTeam(actorRole Role) error {
	if !actorRole.IsMaster() {
		return errors.NewForbiddenError("Only master users can manage team members")
	}
	return nil
}

// EnsureCanRemove applies the team removal rules: only a MASTER removes, never
// itself, never across companies, and the MASTER account is permanent.
func EnsureCanRemove(actorID, actorCompanyID string, actorRole Role, target *User) error {
	if err := EnsureCanManageTeam(actorRole); err != nil {
		return err
	}
	if target.ID() == actorID {
		return errors.NewValidationError("Cannot delete your own account")
	}
	if target.CompanyID() != actorCompanyID {
		return errors.NewForbiddenError("User not in your company")
	}
	if target.IsMaster() {
		return errors.NewValidationError("Cannot delete master user")
	}
	return nil
}
