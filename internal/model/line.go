package model

// BusinessLine identifies one of the three processed books of business.
type BusinessLine string

const (
	LineDirect  BusinessLine = "direct"
	LineAssumed BusinessLine = "assumed"
	LineCeded   BusinessLine = "ceded"
)

// Lines returns all business lines in processing order.
func Lines() []BusinessLine {
	return []BusinessLine{LineDirect, LineAssumed, LineCeded}
}

// Direction is the debit/credit side of a ledger entry.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// Code returns the single-letter ledger code for the direction.
func (d Direction) Code() string {
	if d == Debit {
		return "D"
	}
	return "C"
}
