package http

import (
	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/repository"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	companyRepo       company.Repository
	userRepo          user.Repository
	brandRepo         brand.Repository
	assetRepo         asset.Repository
	accessRequestRepo accessrequest.Repository
	noteRepo          note.Repository
	notificationRepo  notification.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		companyRepo:       repository.NewCompanyRepository(db, log),
		userRepo:          repository.NewUserRepository(db, log),
		brandRepo:         repository.NewBrandRepository(db, log),
		assetRepo:         repository.NewAssetRepository(db, log),
		accessRequestRepo: repository.NewAccessRequestRepository(db, log),
		noteRepo:          repository.NewNoteRepository(db, log),
		notificationRepo:  repository.NewNotificationRepository(db, log),
	}
}
