package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadScan    = "label scan uploaded successfully"
	MessageSuccessGetScanResult = "scan result retrieved successfully"

	MessageFailedUploadScan    = "failed to upload label scan"
	MessageFailedGetScanResult = "failed to retrieve scan result"

	ErrScanNotFound       = errors.New("label scan not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrOcrFailed          = errors.New("text recognition failed")
)

type (
	UploadScanRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadScanResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ScanResultResponse struct {
		ScanID      string `json:"scan_id"`
		Status      string `json:"status"`
		ImageURL    string `json:"image_url"`
		OcrText     string `json:"ocr_text,omitempty"`
		GuessName   string `json:"guess_name,omitempty"`
		GuessExpiry string `json:"guess_expiry,omitempty"`
	}
)
