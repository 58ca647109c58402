package rules

// i17Names maps each I17 account code used by the rule tables to its
// chart-of-accounts name. LRC = liability for remaining coverage,
// ARC = asset for remaining coverage, AIC = asset for incurred claims.
var i17Names = map[string]string{
	// direct business
	"2606010801": "LRC - future cash flows - cash flow / premium - premium income",
	"2606011002": "LRC - future cash flows - cash flow / acquisition costs - fee and commission expense / commission",
	"2606011102": "LRC - future cash flows - PAA allocated revenue - premium income / direct business",
	"2606011603": "LRC - future cash flows - acquisition cost amortization expense - PAA / direct business",
	"2606011202": "LRC - future cash flows - PAA onerous contract loss - loss provision movement / direct business",
	"2606011302": "LRC - future cash flows - insurance finance expense - current interest accretion / PAA / direct business",

	// assumed reinsurance
	"2606010901": "LRC - future cash flows - cash flow / assumed premium - reinsurance premium income / proportional treaty",
	"2606010904": "LRC - future cash flows - cash flow / assumed premium - reinsurance premium income / proportional facultative",
	"2606010911": "LRC - future cash flows - cash flow / assumed premium - reinsurance commission / proportional treaty",
	"2606010913": "LRC - future cash flows - cash flow / assumed premium - reinsurance commission / proportional facultative",
	"2606010921": "LRC - future cash flows - cash flow / assumed premium - brokerage / proportional treaty",
	"2606010923": "LRC - future cash flows - cash flow / assumed premium - brokerage / proportional facultative",
	"2606011101": "LRC - future cash flows - PAA allocated revenue - premium income / assumed business",
	"2606011602": "LRC - future cash flows - acquisition cost amortization expense - PAA / assumed business",
	"2606011301": "LRC - future cash flows - insurance finance expense - current interest accretion / PAA / assumed business",
	"2606011201": "LRC - future cash flows - PAA onerous contract loss - loss provision movement / assumed business",

	// ceded reinsurance
	"1252010501": "ARC - future cash flows - cash flow / ceded premium - direct business / proportional treaty",
	"1252010503": "ARC - future cash flows - cash flow / ceded premium - direct business / proportional facultative",
	"1252010511": "ARC - future cash flows - cash flow / ceded premium - assumed business / proportional treaty",
	"1252010513": "ARC - future cash flows - cash flow / ceded premium - assumed business / proportional facultative",
	"1252010521": "ARC - future cash flows - cash flow / ceded premium - commission recovery / direct business / proportional treaty",
	"1252010523": "ARC - future cash flows - cash flow / ceded premium - commission recovery / direct business / proportional facultative",
	"1252010531": "ARC - future cash flows - cash flow / ceded premium - commission recovery / assumed business / proportional treaty",
	"1252010533": "ARC - future cash flows - cash flow / ceded premium - commission recovery / assumed business / proportional facultative",
	"1252010301": "ARC - future cash flows - PAA allocated ceded premium - ceded premium / direct business",
	"1252010302": "ARC - future cash flows - PAA allocated ceded premium - ceded premium / assumed business",
	"1252010401": "ARC - future cash flows - PAA loss recovery adjustment - loss recovery adjustment / direct business",
	"1252010402": "ARC - future cash flows - PAA loss recovery adjustment - loss recovery adjustment / assumed business",
	"1252010201": "ARC - future cash flows - claims recovery / investment component - claims recovery expense / direct business / proportional treaty",
	"1252010202": "ARC - future cash flows - claims recovery / investment component - claims recovery expense / direct business / proportional facultative",
	"1253010501": "AIC - future cash flows - claims recovery / investment component - reinsurance receivable / claims recovery / direct business / proportional treaty",
	"1253010502": "AIC - future cash flows - claims recovery / investment component - reinsurance receivable / claims recovery / direct business / proportional facultative",

	// ceded finance expense
	"1252010101": "ARC - future cash flows - insurance finance expense - interest accretion and financial assumption changes / direct business",
	"1252010102": "ARC - future cash flows - insurance finance expense - interest accretion and financial assumption changes / assumed business",
}

// AccountName returns the chart name for an I17 account code, or "" for an
// unknown or empty code.
func AccountName(code string) string {
	return i17Names[code]
}

// KnownCode reports whether code belongs to the I17 code set.
func KnownCode(code string) bool {
	_, ok := i17Names[code]
	return ok
}
