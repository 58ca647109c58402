package rules

import "github.com/glbridge-dev/glbridge/internal/model"

// Measure column names of the direct book (measure_cx_unexpired).
const (
	SrcTotalPremium     = "total_premium"
	SrcTotalIACF        = "total_iacf_amt"
	SrcConfirmedPremium = "acc_confirmed_premium"
	SrcIACFPremium      = "acc_iacf_premium"
	SrcLossCostPolicy   = "lrc_loss_cost_policy"
	SrcIFIE             = "ifie_amt"
)

// Measure column names of the reinsurance books (int_measure_cx_unexpired_rein).
const (
	SrcPremium             = "premium"
	SrcCommission          = "commission"
	SrcBrokerage           = "brokerage"
	SrcNetPremiumAmort     = "net_premium_amortization"
	SrcCumIFIEAmort        = "cumulative_ifie_amt_amortization"
	SrcCumNoIACFAmort      = "cumulative_no_iacf_amortization"
	SrcLossAllocation      = "loss_component_allocation"
	SrcLossComponent       = "loss_component"
	SrcCumIFIE             = "cumulative_ifie_amt"
	SrcInvestmentComponent = "base_investment_amortization"
)

const (
	ConventionPositive = "positive"
	ConventionNegative = "negative"
)

// ForLine returns the ordered rule table for a business line.
func ForLine(line model.BusinessLine) []Rule {
	switch line {
	case model.LineDirect:
		return directRules
	case model.LineAssumed:
		return assumedRules
	case model.LineCeded:
		return cededRules
	}
	return nil
}

// directRules posts the liability-for-remaining-coverage movements of
// direct written business. All entries are credits against LRC accounts.
var directRules = []Rule{
	{Label: "written premium", Direction: model.Credit, Code: FixedCode("2606010801"),
		Sources: []string{SrcTotalPremium}, Sign: 1, Convention: ConventionPositive},
	{Label: "acquisition cash flow", Direction: model.Credit, Code: FixedCode("2606011002"),
		Sources: []string{SrcTotalIACF}, Sign: -1, Convention: ConventionNegative},
	{Label: "earned premium", Direction: model.Credit, Code: FixedCode("2606011102"),
		Sources: []string{SrcConfirmedPremium}, Sign: -1, Convention: ConventionNegative},
	{Label: "acquisition cost amortization", Direction: model.Credit, Code: FixedCode("2606011603"),
		Sources: []string{SrcIACFPremium}, Sign: 1, Convention: ConventionPositive},
	{Label: "onerous contract loss", Direction: model.Credit, Code: FixedCode("2606011202"),
		Sources: []string{SrcLossCostPolicy}, Sign: 1, Convention: ConventionPositive},
	{Label: "interest accretion", Direction: model.Credit, Code: FixedCode("2606011302"),
		Sources: []string{SrcIFIE}, Sign: 1, Convention: ConventionPositive},
}

// assumedRules posts assumed reinsurance. The premium, commission and
// brokerage accounts differ between treaty contracts and facultative
// cessions, selected on the contract flag.
var assumedRules = []Rule{
	{Label: "assumed premium income", Direction: model.Credit,
		Code:    SelectorCode(map[string]string{"true": "2606010901", "false": "2606010904"}, KeyIsContract),
		Sources: []string{SrcPremium}, Sign: 1, Convention: ConventionPositive},
	{Label: "assumed commission", Direction: model.Credit,
		Code:    SelectorCode(map[string]string{"true": "2606010911", "false": "2606010913"}, KeyIsContract),
		Sources: []string{SrcCommission}, Sign: -1, Convention: ConventionNegative},
	{Label: "brokerage", Direction: model.Credit,
		Code:    SelectorCode(map[string]string{"true": "2606010921", "false": "2606010923"}, KeyIsContract),
		Sources: []string{SrcBrokerage}, Sign: -1, Convention: ConventionNegative},
	{Label: "earned premium", Direction: model.Credit, Code: FixedCode("2606011101"),
		Sources: []string{SrcNetPremiumAmort, SrcCumIFIEAmort}, Sign: -1, Convention: ConventionNegative},
	{Label: "acquisition cost amortization", Direction: model.Credit, Code: FixedCode("2606011602"),
		Sources: []string{SrcCumNoIACFAmort}, Sign: 1, Convention: ConventionPositive},
	{Label: "onerous contract loss", Direction: model.Credit, Code: FixedCode("2606011201"),
		Sources: []string{SrcLossAllocation}, Sign: 1, Convention: ConventionPositive},
	{Label: "interest accretion", Direction: model.Credit, Code: FixedCode("2606011301"),
		Sources: []string{SrcCumIFIE}, Sign: 1, Convention: ConventionPositive},
}

// cededRules posts ceded reinsurance recoverables as debits. Account codes
// depend on the cession type ("1" ceded from direct, "2" from assumed
// business) and, for the cash-flow accounts, on the contract flag.
var cededRules = []Rule{
	{Label: "ceded premium", Direction: model.Debit,
		Code: SelectorCode(map[string]string{
			"1_true": "1252010501", "1_false": "1252010503",
			"2_true": "1252010511", "2_false": "1252010513",
		}, KeyCessionType, KeyIsContract),
		Sources: []string{SrcPremium}, Sign: 1, Convention: ConventionPositive},
	{Label: "ceding commission recovery", Direction: model.Debit,
		Code: SelectorCode(map[string]string{
			"1_true": "1252010521", "1_false": "1252010523",
			"2_true": "1252010531", "2_false": "1252010533",
		}, KeyCessionType, KeyIsContract),
		Sources: []string{SrcCommission, SrcBrokerage}, Sign: -1, Convention: ConventionNegative},
	{Label: "ceded premium allocation", Direction: model.Debit,
		Code:    SelectorCode(map[string]string{"1": "1252010301", "2": "1252010302"}, KeyCessionType),
		Sources: []string{SrcNetPremiumAmort, SrcCumIFIEAmort}, Sign: -1, Convention: ConventionNegative},
	{Label: "loss recovery", Direction: model.Debit,
		Code:    SelectorCode(map[string]string{"1": "1252010401", "2": "1252010402"}, KeyCessionType),
		Sources: []string{SrcLossComponent}, Sign: 1, Convention: ConventionPositive},
	{Label: "interest accretion", Direction: model.Debit,
		Code:    SelectorCode(map[string]string{"1": "1252010101", "2": "1252010102"}, KeyCessionType),
		Sources: []string{SrcCumIFIE}, Sign: 1, Convention: ConventionPositive},
}

// CededInvestmentComponent is the fixed two-leg expansion of the amortized
// investment component on ceded business: a negative claims-recovery leg
// and its positive reinsurance-receivable counterpart.
var CededInvestmentComponent = StructuralRule{
	Label:     "investment component",
	Direction: model.Debit,
	Source:    SrcInvestmentComponent,
	Legs: [2]StructuralLeg{
		{
			Code:       SelectorCode(map[string]string{"true": "1252010201", "false": "1252010202"}, KeyIsContract),
			Sign:       -1,
			Convention: "negative, amortized investment component",
		},
		{
			Code:       SelectorCode(map[string]string{"true": "1253010501", "false": "1253010502"}, KeyIsContract),
			Sign:       1,
			Convention: "positive, amortized investment component",
		},
	},
}
