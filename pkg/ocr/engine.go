package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Result is what an OCR engine returns for one image: the raw text and a
// recognition confidence on a 0-100 scale.
type Result struct {
	Text       string
	Confidence float64
}

// Engine is the OCR collaborator. Implementations own any timeout policy;
// the parsing pipeline itself never blocks.
type Engine interface {
	Recognize(path string, languages []string) (Result, error)
}

// TesseractEngine recognizes text with a local Tesseract install via
// gosseract. Confidence is the mean word confidence of the page.
type TesseractEngine struct{}

func (TesseractEngine) Recognize(path string, languages []string) (Result, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			return Result{}, fmt.Errorf("set languages %s: %w", strings.Join(languages, "+"), err)
		}
	}
	if err := client.SetImage(path); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return Result{}, fmt.Errorf("tesseract: %w", err)
	}
	return Result{Text: text, Confidence: meanWordConfidence(client)}, nil
}

func meanWordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence
	}
	return sum / float64(len(boxes))
}
