package model

import "github.com/shopspring/decimal"

// Entry is an intermediate ledger entry: one fact row expanded by one rule.
// AccountCode is empty when the rule's code selector had no match for the
// row's dimension key; such rows are counted and must not be posted.
type Entry struct {
	Dimensions  Dimensions
	Label       string
	Direction   Direction
	AccountCode string
	AccountName string
	Convention  string
	Amount      decimal.Decimal
}

// FinalEntry is one row of the canonical ledger output schema.
type FinalEntry struct {
	SJID               string
	AccountPeriod      string
	DCCode             string
	AccountCode        string
	AccountName        string
	OrgSegment         string
	AgricultureSegment string
	CostCenterSegment  string
	DetailSegment      string
	ProductSegment     string
	CoverageSegment    string
	ChannelSegment     string
	VehicleSegment     string
	Reserve1           string
	Reserve2           string
	PortfolioID        string
	GroupID            string
	OriginCurrencyCode string
	OriginCurrencyAmt  decimal.Decimal
	ExchangeRate       decimal.Decimal
	LocalCurrencyCode  string
	LocalCurrencyAmt   decimal.Decimal
	DCLocalCurrencyAmt decimal.Decimal
	EvaluateMethod     string
	InsuranceType      string
	OriginDataType     string
}

// FinalColumns is the fixed output column order of the canonical schema.
var FinalColumns = []string{
	"sj_id", "account_period", "dc_cd", "account_code", "account_name", "org_segment",
	"agriculture_segment", "cost_center_segment", "detail_segment", "product_segment",
	"coverage_segment", "channel_segment", "car_cash_segment", "reserve1", "reserve2",
	"portfolio_id", "insurance_contract_group_id", "origin_currency_code", "origin_currency_amt",
	"exchange_rate", "local_currency_code", "local_currency_amt", "dc_local_currency_amt",
	"evaluate_method", "insurance_type", "origin_data_type",
}

// Row returns the entry's values in FinalColumns order. Amounts are
// rendered as float64 so spreadsheet cells stay numeric.
func (e FinalEntry) Row() []interface{} {
	return []interface{}{
		e.SJID, e.AccountPeriod, e.DCCode, e.AccountCode, e.AccountName, e.OrgSegment,
		e.AgricultureSegment, e.CostCenterSegment, e.DetailSegment, e.ProductSegment,
		e.CoverageSegment, e.ChannelSegment, e.VehicleSegment, e.Reserve1, e.Reserve2,
		e.PortfolioID, e.GroupID, e.OriginCurrencyCode, e.OriginCurrencyAmt.InexactFloat64(),
		e.ExchangeRate.InexactFloat64(), e.LocalCurrencyCode, e.LocalCurrencyAmt.InexactFloat64(),
		e.DCLocalCurrencyAmt.InexactFloat64(),
		e.EvaluateMethod, e.InsuranceType, e.OriginDataType,
	}
}
