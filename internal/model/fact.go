package model

import "github.com/shopspring/decimal"

// Dimensions holds the grouping key columns of one measurement fact row.
// Direct business fills ChannelCode and leaves the reinsurance flags empty;
// assumed and ceded reinsurance do the reverse.
type Dimensions struct {
	OrgCode          string // com_code
	ChannelCode      string // business_nature (direct only)
	VehicleClassCode string // car_kind_code
	UsageTypeCode    string // use_nature_code
	PortfolioID      string // portfolio_id
	GroupID          string // group_id
	ValMethod        string // val_method
	RiskCode         string // risk_code
	ClassCode        string // class_code
	ContractFlag     string // contract_flag: "1" facultative, "2" treaty contract
	EnquiryType      string // enquiry_type (reinsurance only)
	ContractType     string // contract_type (reinsurance only)
	CessionType      string // rein_type: "1" ceded from direct, "2" from assumed
}

// IsContract reports whether the row belongs to a treaty contract rather
// than a facultative cession.
func (d Dimensions) IsContract() bool {
	return d.ContractFlag == "2"
}

// MeasurementFact is one pre-aggregated row from the valuation platform:
// a unique dimension tuple plus its summed measure columns.
type MeasurementFact struct {
	Dimensions Dimensions
	Measures   map[string]decimal.Decimal
}

// Measure returns the named measure value, or zero if the column exists in
// the table schema but the row carries no value.
func (f MeasurementFact) Measure(name string) decimal.Decimal {
	return f.Measures[name]
}

// FactTable is the measurement input for one business line and period.
// MeasureColumns lists the measure columns present in this extraction;
// rule applicability is decided against it, not against individual rows.
type FactTable struct {
	Line           BusinessLine
	MeasureColumns []string
	Rows           []MeasurementFact
}

// HasMeasures reports whether every named column is present in the table.
func (t *FactTable) HasMeasures(names ...string) bool {
	for _, name := range names {
		found := false
		for _, col := range t.MeasureColumns {
			if col == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
