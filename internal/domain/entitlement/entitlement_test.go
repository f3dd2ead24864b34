package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/shared/errors"
)

func TestCanWrite_Exhaustive(t *testing.T) {
	for _, status := range company.AllSubscriptionStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			assert.Equal(t, status == company.SubscriptionStatusActive, CanWrite(status))
		})
	}
}

func TestEnsureCanWrite(t *testing.T) {
	ops := []Operation{OperationAssetUpload, OperationBrandUpdate, OperationAccessRequestCreate}

	for _, status := range company.AllSubscriptionStatuses() {
		c, err := company.ReconstructCompany("cmp_1", "Acme", status, "", "", nil, time.Now(), time.Now())
		require.NoError(t, err)

		for _, op := range ops {
			t.Run(status.String()+"/"+string(op), func(t *testing.T) {
				err := EnsureCanWrite(c, op)
				if status == company.SubscriptionStatusActive {
					assert.NoError(t, err)
					return
				}
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
				assert.Equal(t, "Subscription required", errors.GetAppError(err).Message)
			})
		}
	}
}

func TestEnsureCanWrite_NilCompany(t *testing.T) {
	assert.True(t, errors.IsForbiddenError(EnsureCanWrite(nil, OperationBrandUpdate)))
}
