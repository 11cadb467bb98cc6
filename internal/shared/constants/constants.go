package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Roles
	RoleStudent = "student"
	RoleAdmin   = "admin"

	// Database table names
	TableUsers         = "users"
	TableTickets       = "tickets"
	TableTicketReplies = "ticket_replies"
	TableClasses       = "classes"
	TableSubjects      = "subjects"
	TableBooks         = "books"
	TableVideos        = "videos"
	TableNotices       = "notices"

	// Rate limit keys
	RateLimitKeyLogin        = "login"
	RateLimitKeyTicketSubmit = "ticket_submit"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
