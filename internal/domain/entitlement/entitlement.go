// Package entitlement decides whether a company's subscription allows writes.
package entitlement

import (
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/errors"
)

// Operation names a gated write.
type Operation string

const (
	OperationAssetUpload         Operation = "asset_upload"
	OperationBrandUpdate         Operation = "brand_update"
	OperationAccessRequestCreate Operation = "access_request_create"
)

// CanWrite is true only for ACTIVE subscriptions.
func CanWrite(status company.SubscriptionStatus) bool {
	return status == company.SubscriptionStatusActive
}

// EnsureCanWrite returns a Forbidden error carrying "Subscription required"
// when c may not perform op. A nil company is never entitled.
func EnsureCanWrite(c *company.Company, op Operation) error {
	if c != nil && CanWrite(c.SubscriptionStatus()) {
		return nil
	}
	return errors.NewForbiddenError(constants.ErrMsgSubscriptionNeeded, string(op))
}
