package extract

import "regexp"

// Matcher ladders. Order is precedence: the first successful pattern wins.

var invoiceNumberLadder = []capturePattern{
	{regexp.MustCompile(`(?i)invoice\s*[#:]?\s*([A-Z0-9\-]+)`), 0.9},
	{regexp.MustCompile(`(?i)inv[-\s]*([0-9]+)`), 0.9},
	{regexp.MustCompile(`(?i)invoice\s*number\s*[:\-]?\s*([A-Z0-9\-]+)`), 0.9},
	{regexp.MustCompile(`(?i)(?:invoice|inv)[\s.#]*([A-Z0-9]{1,20})`), 0.9},
}

var dateLadder = []capturePattern{
	{regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`), 0.8},
	{regexp.MustCompile(`\b(\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`), 0.8},
}

var timeLadder = []capturePattern{
	{regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}\s*(?:am|pm))\b`), 0.8},
	{regexp.MustCompile(`\b(\d{1,2}:\d{2}:\d{2})\b`), 0.8},
	{regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`), 0.8},
}

var totalLadder = []capturePattern{
	{regexp.MustCompile(`(?i)(?:total|amount)[\s:]*\$?([0-9,]+\.?[0-9]*)`), 0.9},
	{regexp.MustCompile(`\$([0-9,]+\.?[0-9]*)`), 0.9},
	{regexp.MustCompile(`(?i)([0-9,]+\.?[0-9]*)\s*(?:usd|dollars)`), 0.9},
}

var subtotalLadder = []capturePattern{
	{regexp.MustCompile(`(?i)sub[\s\-]*total[\s:]*\$?([0-9,]+\.?[0-9]*)`), 0.9},
}

var taxLadder = []capturePattern{
	{regexp.MustCompile(`(?i)(?:tax|gst|hst)[\s:]*\$?([0-9,]+\.?[0-9]*)`), 0.8},
	{regexp.MustCompile(`(?i)\btax\b.*?\$([0-9,]+\.?[0-9]*)`), 0.8},
}

var tipLadder = []capturePattern{
	{regexp.MustCompile(`(?i)(?:tip|gratuity)[\s:]*\$?([0-9,]+\.?[0-9]*)`), 0.9},
}

var receiptNumberLadder = []capturePattern{
	{regexp.MustCompile(`(?i)receipt\s*(?:no|number|num)?\s*[#:.]?\s*([A-Z0-9\-]{2,})`), 0.8},
	{regexp.MustCompile(`(?i)transaction\s*(?:id|no|number)?\s*[#:.]?\s*([A-Z0-9\-]{2,})`), 0.8},
}

var cashierLadder = []capturePattern{
	{regexp.MustCompile(`(?i)(?:cashier|server)\s*[:#]?\s*([A-Za-z]{2,30})\b`), 0.7},
	{regexp.MustCompile(`(?i)\b([A-Za-z]{2,30})\s*[:\-]?\s*(?:cashier|server)\b`), 0.7},
}

// locationLadder is applied line by line; the matched line is the value.
var locationLadder = []capturePattern{
	{regexp.MustCompile(`(?i)\b(\d+\s+[A-Za-z][A-Za-z .]*\b(?:street|st|avenue|ave|road|rd|boulevard|blvd|drive|dr|lane|ln|way|court|ct)\b\.?)`), 0.8},
}

// addressCityStateZip corroborates merchant-name candidates.
var addressCityStateZip = regexp.MustCompile(`[A-Za-z .]+,\s*[A-Z]{2}\s*\d{5}`)

// hasDigit rejects vendor/merchant candidates containing digits.
var hasDigit = regexp.MustCompile(`\d`)

// paymentPattern is one payment method with its keyword set. The table is
// scanned in priority order; the first keyword hit wins.
type paymentPattern struct {
	method   string
	keywords []string
}

var paymentMethods = []paymentPattern{
	{"cash", []string{"cash"}},
	{"credit", []string{"credit card", "credit", "visa", "mastercard", "amex", "american express"}},
	{"debit", []string{"debit card", "debit", "interac"}},
	{"check", []string{"check", "cheque"}},
}

// Line-item patterns.
var (
	priceToken     = regexp.MustCompile(`\$[0-9,]+\.?[0-9]*`)
	simpleItemLine = regexp.MustCompile(`^(.*?)\s*\$([0-9,]+\.?[0-9]*)$`)
	detailItemLine = regexp.MustCompile(`(?i)^(.*?)\s*(\d+(?:\.\d+)?)\s*(?:x|@)\s*\$?([0-9,]+\.?[0-9]*)\s*=?\s*\$?([0-9,]+\.?[0-9]*)$`)
)
