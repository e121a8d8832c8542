package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/internal/utils"
)

// OcrResult is the recognizer's output: the full recognized text plus the
// same text split into top-to-bottom lines for the extractor.
type OcrResult struct {
	Text  string
	Lines []string
}

// Recognizer turns a label photo into text.
type Recognizer interface {
	Recognize(ctx context.Context, imageURL string) (*OcrResult, error)
}

type visionRecognizer struct {
	apiKey string
	client *http.Client
}

// NewVisionRecognizer builds a recognizer backed by the Google Cloud Vision
// images:annotate endpoint in DOCUMENT_TEXT_DETECTION mode, which handles
// the dense small print on food labels better than plain text detection.
func NewVisionRecognizer() Recognizer {
	return &visionRecognizer{
		apiKey: utils.GetConfig("VISION_API_KEY"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

const visionEndpoint = "https://vision.googleapis.com/v1/images:annotate"

type (
	visionRequest struct {
		Requests []visionAnnotateRequest `json:"requests"`
	}

	visionAnnotateRequest struct {
		Image    visionImage     `json:"image"`
		Features []visionFeature `json:"features"`
	}

	visionImage struct {
		Source visionImageSource `json:"source"`
	}

	visionImageSource struct {
		ImageURI string `json:"imageUri"`
	}

	visionFeature struct {
		Type string `json:"type"`
	}

	visionResponse struct {
		Responses []struct {
			FullTextAnnotation struct {
				Text string `json:"text"`
			} `json:"fullTextAnnotation"`
			Error *struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"responses"`
	}
)

func (v *visionRecognizer) Recognize(ctx context.Context, imageURL string) (*OcrResult, error) {
	payload := visionRequest{
		Requests: []visionAnnotateRequest{{
			Image:    visionImage{Source: visionImageSource{ImageURI: imageURL}},
			Features: []visionFeature{{Type: "DOCUMENT_TEXT_DETECTION"}},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?key=%s", visionEndpoint, v.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision api returned status %d", res.StatusCode)
	}

	var parsed visionResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Responses) == 0 {
		return nil, domain.ErrOcrFailed
	}
	if apiErr := parsed.Responses[0].Error; apiErr != nil {
		return nil, fmt.Errorf("vision api: %s", apiErr.Message)
	}

	text := parsed.Responses[0].FullTextAnnotation.Text
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrOcrFailed
	}

	return &OcrResult{Text: text, Lines: strings.Split(text, "\n")}, nil
}
