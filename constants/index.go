package constants

// Roles
const (
	ROLE_STAFF = "STAFF"
	ROLE_ADMIN = "ADMIN"
)

var ROLE = []string{ROLE_STAFF, ROLE_ADMIN}

// Capabilities checked by the permission evaluator. The set is closed;
// anything else fails the check.
const (
	CAP_MANAGE_EVENTS   = "manageEvents"
	CAP_MANAGE_STAFF    = "manageStaff"
	CAP_REVIEW_PROFILES = "reviewProfiles"
)

// Profile moderation states
const (
	PROFILE_PENDING  = "PENDING"
	PROFILE_APPROVED = "APPROVED"
	PROFILE_REJECTED = "REJECTED"
)

var PROFILE_STATUS = []string{PROFILE_PENDING, PROFILE_APPROVED, PROFILE_REJECTED}

// Profile history actions
const (
	HISTORY_CREATED  = "created"
	HISTORY_UPDATED  = "updated"
	HISTORY_APPROVED = "approved"
	HISTORY_PENDING  = "pending"
	HISTORY_REJECTED = "rejected"
)

// Event states
const (
	EVENT_UPCOMING = "UPCOMING"
	EVENT_ONGOING  = "ONGOING"
	EVENT_ENDED    = "ENDED"
)

// Response messages
const (
	MISSING_LOGIN_INPUT                   = "Identifier and password are required"
	INVALID_CREDENTIALS                   = "Invalid identifier or password"
	INVALID_SESSION                       = "Invalid or expired session"
	MISSING_TOKEN                         = "Missing token"
	NOT_FOUND_RECORDS                     = "Record not found"
	ACCOUNT_NOT_PERMISSION                = "Insufficient permission"
	ERROR_INTERNAL_ERROR                  = "Internal server error"
	ERROR_INPUT                           = "Invalid input"
	ERROR_CREATE                          = "Create failed"
	ERROR_PARSE_DATA_TO_LOCALS            = "Could not read validated input"
	CAN_NOT_HASH_PASSWORD                 = "Could not hash password"
	USERNAME_OR_EMAIL_EXISTS              = "Username or email already exists"
	ROLE_NOT_EXISTS                       = "Role is not valid"
	STATUS_NOT_EXISTS                     = "Status is not valid"
	NEW_PASSWORD_NOT_SAME_REPEAT_PASSWORD = "New password and repeat password do not match"
	CURRENT_PASSWORD_WRONG                = "Current password is wrong"
	DATA_INPUT_IS_NOT_NUMBER              = "Parameter must be a number"
	PROFILE_NOT_SUBMITTED                 = "Profile has not been submitted yet"
	RESET_TOKEN_INVALID                   = "Reset token is invalid or expired"
)
