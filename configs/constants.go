package configs

import (
	"time"
)

const (
	// Project Rules
	PROJECT_NAME = "Lingua - Translate"

	// Session Rules
	REFRESH_TOKEN_LENGTH   = 32
	REFRESH_TOKEN_DURATION = 30 * 24 * time.Hour
	REFRESH_TOKEN_NAME     = "lingua_translate_refresh_token"
	ACCESS_TOKEN_NAME      = "lingua_translate_access_token"
	ACCESS_TOKEN_DURATION  = 15 * time.Minute
	JWT_ISSUER             = "lingua-translate"

	// Pagination Rules
	DEFAULT_PAGE_SIZE = 20
	MAX_PAGE_SIZE     = 100
)
