package utils

import "github.com/gin-gonic/gin"

// FieldError is one entry of an {errors: [...]} body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSONMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"msg": msg})
}

func JSONErrors(c *gin.Context, code int, errs []FieldError) {
	c.JSON(code, gin.H{"errors": errs})
}

// JSONConflict answers with a message plus the reasons behind it.
func JSONConflict(c *gin.Context, code int, msg string, reasons []string) {
	c.JSON(code, gin.H{"msg": msg, "errors": reasons})
}
