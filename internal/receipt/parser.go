package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// trailing price, e.g. "Nasi Lemak  12.50", "Teh Tarik RM3.80", "2x Roti 4.00"
	priceLine = regexp.MustCompile(`^(.*?)\s*(?:RM\s*)?(-?\d{1,6}(?:,\d{3})*\.\d{2})\s*$`)
	qtyPrefix = regexp.MustCompile(`^(\d{1,3})\s*[xX]\s+(.*)$`)
	qtySuffix = regexp.MustCompile(`^(.*?)\s+[xX]\s*(\d{1,3})$`)
)

// keyword sets that mark summary lines rather than items
var (
	subtotalWords = []string{"subtotal", "sub total", "sub-total"}
	serviceWords  = []string{"service charge", "svc chg", "svc charge", "service chg", "s.charge"}
	sstWords      = []string{"sst", "service tax", "gst", "tax"}
	roundingWords = []string{"rounding", "rounding adj", "adj"}
	totalWords    = []string{"total", "grand total", "amount due", "nett", "net total"}
	ignoreWords   = []string{"cash", "change", "visa", "mastercard", "credit card", "debit", "tng", "qr pay", "balance", "tendered"}
)

// Parse extracts line items and summary amounts from free-form receipt
// text, one entry per line. Lines that match no known shape are skipped.
func Parse(text string) *ParseResult {
	result := &ParseResult{Items: []ParsedItem{}}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		m := priceLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := strings.Trim(strings.TrimSpace(m[1]), ":.-")
		name = strings.TrimSpace(name)
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
		if err != nil {
			continue
		}

		lower := strings.ToLower(name)
		switch {
		case matchesAny(lower, ignoreWords):
			continue
		case matchesAny(lower, subtotalWords):
			result.Subtotal = amount
		case matchesAny(lower, serviceWords):
			result.ServiceCharge = amount
		case matchesAny(lower, roundingWords):
			result.Rounding = amount
		case matchesAny(lower, sstWords):
			result.SST = amount
		case matchesAny(lower, totalWords):
			result.Total = amount
		default:
			if name == "" || amount <= 0 {
				continue
			}
			result.Items = append(result.Items, parseItem(name, amount))
		}
	}

	return result
}

// parseItem pulls a quantity out of the item name when present,
// e.g. "2x Milo Ais" or "Milo Ais x2".
func parseItem(name string, amount float64) ParsedItem {
	item := ParsedItem{Name: name, Amount: amount, Quantity: 1}

	if m := qtyPrefix.FindStringSubmatch(name); m != nil {
		if qty, err := strconv.Atoi(m[1]); err == nil && qty > 0 {
			item.Quantity = qty
			item.Name = strings.TrimSpace(m[2])
		}
	} else if m := qtySuffix.FindStringSubmatch(name); m != nil {
		if qty, err := strconv.Atoi(m[2]); err == nil && qty > 0 {
			item.Quantity = qty
			item.Name = strings.TrimSpace(m[1])
		}
	}

	return item
}

// matchesAny reports whether the line starts with one of the keywords as a
// whole word. A bare prefix check would swallow item lines like "Taxi" for
// the "tax" keyword.
func matchesAny(line string, words []string) bool {
	for _, w := range words {
		if line == w {
			return true
		}
		if !strings.HasPrefix(line, w) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(line[len(w):])
		if !unicode.IsLetter(next) && !unicode.IsDigit(next) {
			return true
		}
	}
	return false
}
