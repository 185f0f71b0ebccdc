package AIService

import (
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

type ErrorCode string

const (
	ErrCodeValidation  ErrorCode = "validation_error"
	ErrCodeDetection   ErrorCode = "detection_failed"
	ErrCodeRateLimit   ErrorCode = "ai_rate_limited"
	ErrCodeAuth        ErrorCode = "ai_auth_failed"
	ErrCodeUnavailable ErrorCode = "ai_unavailable"
	ErrCodeGeneric     ErrorCode = "translation_failed"
)

// TranslateError carries a user-facing category and message alongside the
// underlying cause.
type TranslateError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *TranslateError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *TranslateError) Unwrap() error {
	return e.Err
}

func newValidationError(message string) *TranslateError {
	return &TranslateError{Code: ErrCodeValidation, Message: message}
}

func newDetectionError(err error) *TranslateError {
	return &TranslateError{
		Code:    ErrCodeDetection,
		Message: "Language detection failed. Please specify the source language manually.",
		Err:     err,
	}
}

// classifyAPIError maps a completion call failure onto the user-facing
// taxonomy by its HTTP status.
func classifyAPIError(err error) *TranslateError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &TranslateError{
				Code:    ErrCodeRateLimit,
				Message: "The AI service is receiving too many requests. Please try again in a moment.",
				Err:     err,
			}
		case apiErr.HTTPStatusCode == http.StatusUnauthorized:
			return &TranslateError{
				Code:    ErrCodeAuth,
				Message: "The AI service rejected our credentials. Please contact support.",
				Err:     err,
			}
		case apiErr.HTTPStatusCode >= http.StatusInternalServerError:
			return &TranslateError{
				Code:    ErrCodeUnavailable,
				Message: "The AI service is temporarily unavailable. Please try again later.",
				Err:     err,
			}
		}
	}

	return &TranslateError{
		Code:    ErrCodeGeneric,
		Message: "Translation failed. Please try again.",
		Err:     err,
	}
}
