package constants

const (
	// Context keys
	ContextKeyIsLoggedIn = "isLoggedIn"
	ContextKeyLocale     = "locale"

	// Session keys
	SessionKeyUserEmail    = "user_email"
	SessionKeySuccessFlash = "success_flash"

	// Post status values
	StatusDraft     = "draft"
	StatusPublished = "published"

	// Editor limits
	MaxImagesPerPost = 4
	MaxImageBytes    = 5 * 1024 * 1024
	TitleMinLen      = 3
	TitleMaxLen      = 100
)
