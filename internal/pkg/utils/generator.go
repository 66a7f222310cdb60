package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSubmissionID() string {
	return uuid.NewString()
}

func GenerateMessageID() string {
	return uuid.NewString()
}
