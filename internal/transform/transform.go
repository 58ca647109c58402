// Package transform turns intermediate ledger entries into the canonical
// output schema: segment resolution, row ids, debit/credit coding and the
// signed local-currency amount.
package transform

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/glbridge-dev/glbridge/internal/id"
	"github.com/glbridge-dev/glbridge/internal/model"
	"github.com/glbridge-dev/glbridge/internal/segment"
)

// Fixed classification tags of the canonical schema.
const (
	InsuranceTypeDirect      = "1"
	InsuranceTypeReinsurance = "2"

	evaluateMethodPAA = "4"
	originDataType    = "9"
	zeroSegment       = "0"
)

// Params is the run configuration of one transformation pass.
type Params struct {
	Period        string
	InsuranceType string
	Currency      string
}

// InsuranceType returns the classification tag for a business line.
func InsuranceType(line model.BusinessLine) string {
	if line == model.LineDirect {
		return InsuranceTypeDirect
	}
	return InsuranceTypeReinsurance
}

// Report counts the segment lookups that found no match. Rows with missing
// segments are retained with empty values so reconciliation can flag them.
type Report struct {
	Rows           int
	MissingProduct int
	MissingOrg     int
	MissingCost    int
	MissingChannel int
	MissingVehicle int
}

// MissingSegments returns the total number of failed segment lookups.
func (r *Report) MissingSegments() int {
	return r.MissingProduct + r.MissingOrg + r.MissingCost + r.MissingChannel + r.MissingVehicle
}

// Clean reports whether every segment lookup succeeded.
func (r *Report) Clean() bool { return r.MissingSegments() == 0 }

// Transform converts intermediate entries to final entries. Entries map
// one-to-one; no row is dropped here regardless of lookup failures.
func Transform(entries []model.Entry, m *segment.Mapper, p Params) ([]model.FinalEntry, *Report) {
	report := &Report{Rows: len(entries)}
	out := make([]model.FinalEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, finalize(e, m, p, report))
	}
	return out, report
}

func finalize(e model.Entry, m *segment.Mapper, p Params, report *Report) model.FinalEntry {
	d := e.Dimensions

	// Reinsurance facts carry no channel dimension; the exports encode
	// that as channel "0".
	channelCode := strings.TrimSpace(d.ChannelCode)
	if channelCode == "" {
		channelCode = zeroSegment
	}

	product, ok := m.ProductSegment(d.RiskCode)
	if !ok {
		report.MissingProduct++
	}
	org, ok := m.OrgSegment(d.OrgCode)
	if !ok {
		report.MissingOrg++
	}
	cost, ok := m.CostCenterSegment(d.OrgCode)
	if !ok {
		report.MissingCost++
	}
	channel, ok := m.ChannelSegment(channelCode)
	if !ok {
		report.MissingChannel++
	}
	vehicle, ok := m.VehicleSegment(d.UsageTypeCode, d.VehicleClassCode)
	if !ok {
		report.MissingVehicle++
	}

	dcCode := e.Direction.Code()
	localAmt := e.Amount
	dcLocalAmt := localAmt
	if dcCode == "C" {
		dcLocalAmt = localAmt.Neg()
	}

	return model.FinalEntry{
		SJID:               id.NewSJID(),
		AccountPeriod:      p.Period,
		DCCode:             dcCode,
		AccountCode:        e.AccountCode,
		AccountName:        e.AccountName,
		OrgSegment:         org,
		AgricultureSegment: zeroSegment,
		CostCenterSegment:  cost,
		DetailSegment:      zeroSegment,
		ProductSegment:     product,
		CoverageSegment:    zeroSegment,
		ChannelSegment:     channel,
		VehicleSegment:     vehicle,
		Reserve1:           zeroSegment,
		Reserve2:           zeroSegment,
		PortfolioID:        strings.TrimSpace(d.PortfolioID),
		GroupID:            strings.TrimSpace(d.GroupID),
		OriginCurrencyCode: p.Currency,
		OriginCurrencyAmt:  e.Amount,
		ExchangeRate:       decimal.NewFromInt(1),
		LocalCurrencyCode:  p.Currency,
		LocalCurrencyAmt:   localAmt,
		DCLocalCurrencyAmt: dcLocalAmt,
		EvaluateMethod:     evaluateMethodPAA,
		InsuranceType:      p.InsuranceType,
		OriginDataType:     originDataType,
	}
}
