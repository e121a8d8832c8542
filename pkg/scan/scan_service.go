package scan

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// processTimeout bounds the background OCR pass for one scan.
const processTimeout = 2 * time.Minute

type (
	ScanService interface {
		// UploadScan stores the label photo, records a Pending scan, and
		// kicks off recognition in the background. The response returns
		// immediately; poll GetScanResult for the outcome.
		UploadScan(ctx context.Context, userID string, req domain.UploadScanRequest) (*domain.UploadScanResponse, error)
		GetScanResult(ctx context.Context, userID, scanID string) (*domain.ScanResultResponse, error)
		GetScanHistory(ctx context.Context, userID string) ([]domain.ScanResultResponse, error)
	}

	scanService struct {
		scanRepository ScanRepository
		awsS3          storage.AwsS3
		recognizer     Recognizer
		extractor      *Extractor
	}
)

func NewScanService(scanRepository ScanRepository, awsS3 storage.AwsS3, recognizer Recognizer) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		awsS3:          awsS3,
		recognizer:     recognizer,
		extractor:      NewExtractor(),
	}
}

func (s *scanService) UploadScan(ctx context.Context, userID string, req domain.UploadScanRequest) (*domain.UploadScanResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	scanID := uuid.New()
	objectKey, err := s.awsS3.UploadFile(scanID.String(), req.Image, "label-scans", storage.AllowImage...)
	if err != nil {
		return nil, err
	}
	imageURL := s.awsS3.GetPublicLinkKey(objectKey)

	labelScan := &entities.LabelScan{
		ID:       scanID,
		UserID:   uid,
		ImageURL: imageURL,
		Status:   entities.ScanStatusPending,
	}
	if err := s.scanRepository.AddLabelScan(ctx, labelScan); err != nil {
		return nil, err
	}

	go s.process(scanID.String(), imageURL)

	return &domain.UploadScanResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   labelScan.Status,
	}, nil
}

// process runs OCR and the name/date heuristics for one scan. It owns its
// own context because the upload request has already returned.
func (s *scanService) process(scanID, imageURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	result, err := s.recognizer.Recognize(ctx, imageURL)
	if err != nil {
		log.Printf("label scan %s: recognition failed: %v", scanID, err)
		s.markFailed(ctx, scanID)
		return
	}

	guess := s.extractor.Derive(result.Text, result.Lines)

	labelScan, err := s.scanRepository.GetLabelScanByID(ctx, scanID)
	if err != nil {
		log.Printf("label scan %s: reload failed: %v", scanID, err)
		return
	}
	labelScan.Status = entities.ScanStatusProcessed
	labelScan.OcrText = CleanText(result.Text)
	labelScan.GuessName = guess.Name
	labelScan.GuessExpiry = guess.Expiry

	if err := s.scanRepository.UpdateLabelScan(ctx, labelScan); err != nil {
		log.Printf("label scan %s: update failed: %v", scanID, err)
	}
}

func (s *scanService) markFailed(ctx context.Context, scanID string) {
	labelScan, err := s.scanRepository.GetLabelScanByID(ctx, scanID)
	if err != nil {
		return
	}
	labelScan.Status = entities.ScanStatusFailed
	if err := s.scanRepository.UpdateLabelScan(ctx, labelScan); err != nil {
		log.Printf("label scan %s: update failed: %v", scanID, err)
	}
}

func (s *scanService) GetScanResult(ctx context.Context, userID, scanID string) (*domain.ScanResultResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	labelScan, err := s.scanRepository.GetLabelScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScanNotFound
		}
		return nil, err
	}
	if labelScan.UserID != uid {
		return nil, domain.ErrUnauthorizedAccess
	}

	res := toScanResultResponse(labelScan)
	return &res, nil
}

func (s *scanService) GetScanHistory(ctx context.Context, userID string) ([]domain.ScanResultResponse, error) {
	labelScans, err := s.scanRepository.GetLabelScans(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ScanResultResponse, 0, len(labelScans))
	for _, labelScan := range labelScans {
		res = append(res, toScanResultResponse(labelScan))
	}
	return res, nil
}

func toScanResultResponse(labelScan *entities.LabelScan) domain.ScanResultResponse {
	return domain.ScanResultResponse{
		ScanID:      labelScan.ID.String(),
		Status:      labelScan.Status,
		ImageURL:    labelScan.ImageURL,
		OcrText:     labelScan.OcrText,
		GuessName:   labelScan.GuessName,
		GuessExpiry: labelScan.GuessExpiry,
	}
}
