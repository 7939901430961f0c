package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers              = "users"
	TableProjects           = "projects"
	TableProjectSupervisors = "project_supervisors"
	TableTickets            = "tickets"
	TableTicketSequences    = "ticket_sequences"
	TableComments           = "comments"

	// Ticket priorities
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
