package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateRequest binds the JSON body into request and writes the error
// response itself, so handlers only need to return on failure.
func ValidateRequest(c *gin.Context, request any) error {
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "validation_error",
			"message": "Invalid request body: " + err.Error(),
		})
		return err
	}

	return nil
}
