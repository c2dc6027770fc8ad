package ocr

// Quality is the extraction quality tier reported alongside the result.
type Quality string

const (
	QualityLow    Quality = "LOW"
	QualityMedium Quality = "MEDIUM"
	QualityHigh   Quality = "HIGH"
)

// ExtractedOrderData is the structured record recovered from an order-slip
// photo. Optional fields use their zero value when no heuristic matched;
// MissingFields lists which of the required fields stayed unresolved so the
// caller can route the result to human review instead of rejecting it.
type ExtractedOrderData struct {
	RawText    string  `json:"rawText"`
	Confidence float64 `json:"confidence"`

	CustomerName    string `json:"customerName,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	PickupAddress   string `json:"pickupAddress,omitempty"`

	// OrderAmount is the resolved final payable total. PayableAmount mirrors
	// it whenever it is resolved; Subtotal/Discount are kept separately so the
	// caller can show the reconciliation.
	OrderAmount    float64 `json:"orderAmount,omitempty"`
	SubtotalAmount float64 `json:"subtotalAmount,omitempty"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
	PayableAmount  float64 `json:"payableAmount,omitempty"`

	Items []string `json:"items"`
	Notes string   `json:"notes,omitempty"`

	Quality       Quality  `json:"quality"`
	MissingFields []string `json:"missingFields"`
}
