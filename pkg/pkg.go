package utils

import (
	"github.com/google/uuid"
)

const (
	TraceID = "x-request-id"
	Method  = "x-method"
	Path    = "x-path"
)

func BuildRequestID() string {
	return uuid.New().String()
}
