package configs

import (
	"time"
)

const (
	// Translation Rules
	AI_TRANSLATE_MODEL = "gpt-4.1-mini"
	AI_DETECT_MODEL    = "gpt-4.1-nano"

	// Rough heuristic for the target models, roughly 3 characters per token.
	// Treated as configuration, not a validated tokenizer model.
	AI_CHARS_PER_TOKEN = 3

	// Estimated-token ceiling for the single-call path.
	AI_TOKEN_THRESHOLD = 3000

	// Character ceiling for a chunk on the chunked path.
	AI_MAX_CHUNK_SIZE = 2500

	// AI Rate Limit Rules
	AI_RATE_LIMIT_WINDOW         = 1 * time.Hour
	AI_RATE_LIMIT_MAX_REQUESTS   = 50
	AI_RATE_LIMIT_REQ_PER_MINUTE = 5
	AI_RATE_LIMIT_MAX_TOKENS     = 100000

	// Global Rate Limit Rules (per IP)
	RATE_LIMIT_WINDOW       = 1 * time.Minute
	RATE_LIMIT_MAX_REQUESTS = 30
)
