package receipt

// ParsedItem is a single line item extracted from receipt text
type ParsedItem struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity"`
}

// ParseResult holds everything the parser could extract from a receipt
type ParseResult struct {
	Items         []ParsedItem `json:"items"`
	Subtotal      float64      `json:"subtotal,omitempty"`
	ServiceCharge float64      `json:"service_charge,omitempty"`
	SST           float64      `json:"sst,omitempty"`
	Rounding      float64      `json:"rounding,omitempty"`
	Total         float64      `json:"total,omitempty"`
}
