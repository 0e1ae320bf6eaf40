package request

// PayRequest is the payload accepted by POST /api/pay. Amount and method are
// the only required fields; everything else defaults server-side.

type PayRequest struct {
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Recipient   string  `json:"recipient"`
	Description string  `json:"description"`
	Subtype     string  `json:"subtype"`
}
