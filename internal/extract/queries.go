package extract

import (
	"fmt"
	"strings"

	"github.com/glbridge-dev/glbridge/internal/model"
	"github.com/glbridge-dev/glbridge/internal/rules"
)

// dimCol binds a database grouping column to a Dimensions field.
type dimCol struct {
	column string
	assign func(*model.Dimensions, string)
}

// lineSpec describes one business line's extraction: source table,
// valuation method discriminator, eligibility cutoff column, grouping
// columns and summed measure columns.
type lineSpec struct {
	table     string
	valMethod string
	cutoffCol string
	dims      []dimCol
	measures  []string
}

var reinsuranceDims = []dimCol{
	{"com_code", func(d *model.Dimensions, v string) { d.OrgCode = v }},
	{"car_kind_code", func(d *model.Dimensions, v string) { d.VehicleClassCode = v }},
	{"use_nature_code", func(d *model.Dimensions, v string) { d.UsageTypeCode = v }},
	{"portfolio_id", func(d *model.Dimensions, v string) { d.PortfolioID = v }},
	{"group_id", func(d *model.Dimensions, v string) { d.GroupID = v }},
	{"val_method", func(d *model.Dimensions, v string) { d.ValMethod = v }},
	{"risk_code", func(d *model.Dimensions, v string) { d.RiskCode = v }},
	{"class_code", func(d *model.Dimensions, v string) { d.ClassCode = v }},
	{"contract_flag", func(d *model.Dimensions, v string) { d.ContractFlag = v }},
	{"enquiry_type", func(d *model.Dimensions, v string) { d.EnquiryType = v }},
	{"contract_type", func(d *model.Dimensions, v string) { d.ContractType = v }},
	{"rein_type", func(d *model.Dimensions, v string) { d.CessionType = v }},
}

var lineSpecs = map[model.BusinessLine]lineSpec{
	model.LineDirect: {
		table:     `"measure_platform"."measure_cx_unexpired"`,
		valMethod: "8",
		cutoffCol: "end_date",
		dims: []dimCol{
			{"com_code", func(d *model.Dimensions, v string) { d.OrgCode = v }},
			{"business_nature", func(d *model.Dimensions, v string) { d.ChannelCode = v }},
			{"car_kind_code", func(d *model.Dimensions, v string) { d.VehicleClassCode = v }},
			{"use_nature_code", func(d *model.Dimensions, v string) { d.UsageTypeCode = v }},
			{"portfolio_id", func(d *model.Dimensions, v string) { d.PortfolioID = v }},
			{"group_id", func(d *model.Dimensions, v string) { d.GroupID = v }},
			{"val_method", func(d *model.Dimensions, v string) { d.ValMethod = v }},
			{"risk_code", func(d *model.Dimensions, v string) { d.RiskCode = v }},
			{"class_code", func(d *model.Dimensions, v string) { d.ClassCode = v }},
		},
		measures: []string{
			rules.SrcTotalPremium, rules.SrcTotalIACF, rules.SrcConfirmedPremium,
			rules.SrcIACFPremium, rules.SrcLossCostPolicy, rules.SrcIFIE,
		},
	},
	model.LineAssumed: {
		table:     `"measure_platform"."int_measure_cx_unexpired_rein"`,
		valMethod: "11",
		cutoffCol: "pi_end_date",
		dims:      reinsuranceDims,
		measures: []string{
			rules.SrcPremium, rules.SrcCommission, rules.SrcBrokerage,
			rules.SrcNetPremiumAmort, rules.SrcCumIFIEAmort, rules.SrcCumNoIACFAmort,
			rules.SrcLossAllocation, rules.SrcCumIFIE,
		},
	},
	model.LineCeded: {
		table:     `"measure_platform"."int_measure_cx_unexpired_rein"`,
		valMethod: "10",
		cutoffCol: "pi_end_date",
		dims:      reinsuranceDims,
		measures: []string{
			rules.SrcPremium, rules.SrcCommission, rules.SrcBrokerage,
			rules.SrcNetPremiumAmort, rules.SrcCumIFIEAmort, rules.SrcLossComponent,
			rules.SrcInvestmentComponent, rules.SrcCumIFIE,
		},
	},
}

// sql renders the extraction query. Dimensions come back as text, measures
// as summed text (scanned into decimals), so precision survives the wire.
// Placeholders: $1 valuation month, $2 valuation method, $3 cutoff date.
func (s lineSpec) sql() string {
	sel := make([]string, 0, len(s.dims)+len(s.measures))
	for _, d := range s.dims {
		sel = append(sel, fmt.Sprintf(`COALESCE("%s"::text, '') AS "%s"`, d.column, d.column))
	}
	for _, m := range s.measures {
		sel = append(sel, fmt.Sprintf(`COALESCE(SUM("%s"), 0)::text AS "%s"`, m, m))
	}

	group := make([]string, 0, len(s.dims))
	for _, d := range s.dims {
		group = append(group, fmt.Sprintf(`"%s"`, d.column))
	}

	return fmt.Sprintf(`SELECT %s FROM %s WHERE "val_month" = $1 AND "val_method" = $2 AND "%s" > $3 GROUP BY %s`,
		strings.Join(sel, ", "), s.table, s.cutoffCol, strings.Join(group, ", "))
}
