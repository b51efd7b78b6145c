package certificate

import (
	"errors"
	"time"
)

const (
	StatusGenerated  = "generated"
	MessageGenerated = "Certificate issued"
)

var ErrNotFound = errors.New("certificate not found")

type CertificateRequest struct {
	ID              int64     `json:"id"`
	StudentID       string    `json:"student_id"`
	CertificateType string    `json:"certificate_type"`
	CreatedAt       time.Time `json:"created_at"`
}

type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
