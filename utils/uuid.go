package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a new unique identifier for request tracing
func GenerateRequestID() string {
	return uuid.New().String()
}
