package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	DefaultNotificationLimit = 50
	MaxNotificationLimit     = 100

	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderStripeSig     = "Stripe-Signature"

	ContentTypeJSON = "application/json"

	// Gin context keys
	ContextKeyPrincipal = "principal"
	ContextKeyRequestID = "request_id"

	TableCompanies      = "companies"
	TableUsers          = "users"
	TableBrands         = "brands"
	TableAssets         = "assets"
	TableAccessRequests = "access_requests"
	TableNotes          = "notes"
	TableNotifications  = "notifications"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgNotAuthenticated    = "Not authenticated"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgSubscriptionNeeded  = "Subscription required"
	ErrMsgTooManyRequests     = "Too many requests, please slow down"
	ErrMsgInvalidCredentials  = "Invalid credentials"
)
