package http

import (
	accessRequestUsecases "github.com/brandvault/brandvault/internal/application/accessrequest/usecases"
	assetUsecases "github.com/brandvault/brandvault/internal/application/asset/usecases"
	authUsecases "github.com/brandvault/brandvault/internal/application/auth/usecases"
	billingUsecases "github.com/brandvault/brandvault/internal/application/billing/usecases"
	brandUsecases "github.com/brandvault/brandvault/internal/application/brand/usecases"
	noteUsecases "github.com/brandvault/brandvault/internal/application/note/usecases"
	notificationUsecases "github.com/brandvault/brandvault/internal/application/notification/usecases"
	teamUsecases "github.com/brandvault/brandvault/internal/application/team/usecases"
	"github.com/brandvault/brandvault/internal/shared/biztime"
)

// allUseCases holds every use case the handlers call.
type allUseCases struct {
	// Auth
	signup      *authUsecases.SignupUseCase
	login       *authUsecases.LoginUseCase
	currentUser *authUsecases.GetCurrentUserUseCase

	// Team
	listMembers  *teamUsecases.ListMembersUseCase
	addMember    *teamUsecases.AddMemberUseCase
	removeMember *teamUsecases.RemoveMemberUseCase

	// Brand
	getOwnBrand      *brandUsecases.GetOwnBrandUseCase
	updateOwnBrand   *brandUsecases.UpdateOwnBrandUseCase
	getBrandDetail   *brandUsecases.GetBrandDetailUseCase
	searchBrands     *brandUsecases.SearchBrandsUseCase
	browseBrands     *brandUsecases.BrowseBrandsUseCase
	quickCreateBrand *brandUsecases.QuickCreateBrandUseCase

	// Access requests
	createAccessRequest       *accessRequestUsecases.CreateAccessRequestUseCase
	updateAccessRequestStatus *accessRequestUsecases.UpdateAccessRequestStatusUseCase
	listAccessRequests        *accessRequestUsecases.ListAccessRequestsUseCase

	// Assets
	uploadAsset   *assetUsecases.UploadAssetUseCase
	deleteAsset   *assetUsecases.DeleteAssetUseCase
	downloadAsset *assetUsecases.DownloadAssetUseCase

	// Notes
	listNotes  *noteUsecases.ListNotesUseCase
	createNote *noteUsecases.CreateNoteUseCase
	deleteNote *noteUsecases.DeleteNoteUseCase

	// Notifications
	listNotifications *notificationUsecases.ListNotificationsUseCase
	markAsRead        *notificationUsecases.MarkNotificationAsReadUseCase
	markAllAsRead     *notificationUsecases.MarkAllAsReadUseCase
	unreadCount       *notificationUsecases.GetUnreadCountUseCase

	// Billing
	billingStatus   *billingUsecases.GetBillingStatusUseCase
	checkoutSession *billingUsecases.CreateCheckoutSessionUseCase
	portalSession   *billingUsecases.CreatePortalSessionUseCase
	handleWebhook   *billingUsecases.HandleWebhookUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	s := c.svcs
	log := c.log
	clock := biztime.SystemClock

	return &allUseCases{
		signup:      authUsecases.NewSignupUseCase(r.companyRepo, r.userRepo, r.brandRepo, s.txManager, s.hasher, s.jwt, s.gateway, log),
		login:       authUsecases.NewLoginUseCase(r.userRepo, s.hasher, s.jwt, log),
		currentUser: authUsecases.NewGetCurrentUserUseCase(r.userRepo, r.companyRepo, r.brandRepo, log),

		listMembers:  teamUsecases.NewListMembersUseCase(r.userRepo, s.enforcer, log),
		addMember:    teamUsecases.NewAddMemberUseCase(r.userRepo, s.hasher, s.enforcer, log),
		removeMember: teamUsecases.NewRemoveMemberUseCase(r.userRepo, s.enforcer, log),

		getOwnBrand:      brandUsecases.NewGetOwnBrandUseCase(r.brandRepo, s.resolver, s.renderer, log),
		updateOwnBrand:   brandUsecases.NewUpdateOwnBrandUseCase(r.companyRepo, r.brandRepo, s.resolver, s.renderer, log),
		getBrandDetail:   brandUsecases.NewGetBrandDetailUseCase(r.brandRepo, r.noteRepo, r.userRepo, s.resolver, s.renderer, log),
		searchBrands:     brandUsecases.NewSearchBrandsUseCase(r.brandRepo, s.resolver, s.renderer, log),
		browseBrands:     brandUsecases.NewBrowseBrandsUseCase(r.brandRepo, s.resolver, s.renderer, log),
		quickCreateBrand: brandUsecases.NewQuickCreateBrandUseCase(r.companyRepo, r.brandRepo, s.txManager, log),

		createAccessRequest: accessRequestUsecases.NewCreateAccessRequestUseCase(
			r.companyRepo, r.brandRepo, r.accessRequestRepo, s.dispatcher, c.metrics, log,
		),
		updateAccessRequestStatus: accessRequestUsecases.NewUpdateAccessRequestStatusUseCase(
			r.brandRepo, r.accessRequestRepo, s.dispatcher, c.metrics, clock, log,
		),
		listAccessRequests: accessRequestUsecases.NewListAccessRequestsUseCase(r.companyRepo, r.brandRepo, r.accessRequestRepo, log),

		uploadAsset: assetUsecases.NewUploadAssetUseCase(
			r.companyRepo, r.brandRepo, r.assetRepo, r.accessRequestRepo, s.blobs, s.dispatcher, c.metrics, clock, log,
		),
		deleteAsset: assetUsecases.NewDeleteAssetUseCase(r.brandRepo, r.assetRepo, s.blobs, log),
		downloadAsset: assetUsecases.NewDownloadAssetUseCase(
			r.brandRepo, r.assetRepo, s.resolver, s.blobs, c.cfg.Storage.PresignTTL(), clock, log,
		),

		listNotes:  noteUsecases.NewListNotesUseCase(r.noteRepo, r.userRepo, log),
		createNote: noteUsecases.NewCreateNoteUseCase(r.brandRepo, r.noteRepo, r.userRepo, s.renderer, log),
		deleteNote: noteUsecases.NewDeleteNoteUseCase(r.noteRepo, s.enforcer, log),

		listNotifications: notificationUsecases.NewListNotificationsUseCase(r.notificationRepo, log),
		markAsRead:        notificationUsecases.NewMarkNotificationAsReadUseCase(r.notificationRepo, log),
		markAllAsRead:     notificationUsecases.NewMarkAllAsReadUseCase(r.notificationRepo, log),
		unreadCount:       notificationUsecases.NewGetUnreadCountUseCase(r.notificationRepo, log),

		billingStatus:   billingUsecases.NewGetBillingStatusUseCase(r.companyRepo, r.userRepo, s.gateway, log),
		checkoutSession: billingUsecases.NewCreateCheckoutSessionUseCase(r.companyRepo, s.gateway, log),
		portalSession:   billingUsecases.NewCreatePortalSessionUseCase(r.companyRepo, s.gateway, log),
		handleWebhook:   billingUsecases.NewHandleWebhookUseCase(r.companyRepo, s.gateway, log),
	}
}
