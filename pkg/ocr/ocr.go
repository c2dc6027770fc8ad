// Package ocr reconstructs a structured order record from a photographed
// order slip: customer name, phone, address, monetary totals, line items,
// notes, and a quality assessment of the extraction. Parsing is pure string
// processing and never fails; absence and uncertainty are reported through
// MissingFields and Quality instead of errors.
package ocr

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Required fields checked for the MissingFields report.
var requiredFields = []string{"customerName", "customerPhone", "deliveryAddress", "orderAmount"}

// Processor runs the full image-to-record pipeline. The zero Engine is not
// usable; construct with NewProcessor or inject a fake for tests. Processors
// hold no per-invocation state and are safe for concurrent use.
type Processor struct {
	Engine     Engine
	Languages  []string
	Preprocess bool
}

func NewProcessor() *Processor {
	return &Processor{Engine: TesseractEngine{}, Languages: []string{"tur", "eng"}, Preprocess: true}
}

// ProcessOrderImage recognizes and parses one slip photo. The source file is
// removed on every exit path, success or error; the caller keeps its own
// copy if it needs the original.
func (p *Processor) ProcessOrderImage(path string) (*ExtractedOrderData, error) {
	defer func() {
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				log.Printf("cleanup %s: %v", path, err)
			}
		}
	}()

	target := path
	if p.Preprocess {
		if enhanced, err := preprocessImage(path); err == nil {
			target = enhanced
			defer os.Remove(enhanced)
		}
	}
	res, err := p.Engine.Recognize(target, p.Languages)
	if err != nil {
		return nil, fmt.Errorf("recognize %s: %w", filepath.Base(path), err)
	}
	if strings.TrimSpace(res.Text) == "" {
		return nil, ErrNoText
	}
	return ParseText(res.Text, res.Confidence), nil
}

// ParseText runs the parsing pipeline over already-recognized text. Always
// returns a best-effort record, never an error.
func ParseText(raw string, confidence float64) *ExtractedOrderData {
	text := NormalizeText(raw)
	lines := splitLines(text)

	d := &ExtractedOrderData{RawText: text, Confidence: confidence}
	d.CustomerName = ExtractName(lines)
	d.CustomerPhone = ExtractPhone(text)
	d.DeliveryAddress = ExtractAddress(text)
	d.Notes = ExtractNotes(lines)
	d.SubtotalAmount, d.DiscountAmount, d.OrderAmount = ResolveAmounts(text)
	if d.OrderAmount > 0 {
		d.PayableAmount = d.OrderAmount
	}
	d.Items = ExtractItems(lines)
	d.MissingFields = missingFields(d)
	d.Quality = ScoreQuality(confidence, len(d.MissingFields))
	return d
}

func missingFields(d *ExtractedOrderData) []string {
	missing := []string{}
	for _, f := range requiredFields {
		switch f {
		case "customerName":
			if d.CustomerName != "" {
				continue
			}
		case "customerPhone":
			if d.CustomerPhone != "" {
				continue
			}
		case "deliveryAddress":
			if d.DeliveryAddress != "" {
				continue
			}
		case "orderAmount":
			if d.OrderAmount > 0 {
				continue
			}
		}
		missing = append(missing, f)
	}
	return missing
}
