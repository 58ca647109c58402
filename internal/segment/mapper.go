// Package segment resolves raw dimension codes to chart-of-accounts segment
// values via static lookup tables exported from the policy admin systems.
package segment

import "strings"

// Mapper holds the five segment lookup tables. Keys are trimmed on load and
// on lookup, so callers may pass values straight from the fact tables.
type Mapper struct {
	product    map[string]string
	org        map[string]string
	costCenter map[string]string
	channel    map[string]string
	vehicle    map[string]string
}

// NewMapper builds a Mapper from raw lookup tables. The vehicle table is
// keyed "<usage>_<vehicle>".
func NewMapper(product, org, costCenter, channel, vehicle map[string]string) *Mapper {
	return &Mapper{
		product:    normalizeTable(product),
		org:        normalizeTable(org),
		costCenter: normalizeTable(costCenter),
		channel:    normalizeTable(channel),
		vehicle:    normalizeTable(vehicle),
	}
}

// ProductSegment resolves the product segment from a risk code.
func (m *Mapper) ProductSegment(riskCode string) (string, bool) {
	return lookup(m.product, riskCode)
}

// OrgSegment resolves the organization segment from an organization code.
func (m *Mapper) OrgSegment(orgCode string) (string, bool) {
	return lookup(m.org, orgCode)
}

// CostCenterSegment resolves the cost-center segment from an organization code.
func (m *Mapper) CostCenterSegment(orgCode string) (string, bool) {
	return lookup(m.costCenter, orgCode)
}

// ChannelSegment resolves the channel segment from a channel code.
func (m *Mapper) ChannelSegment(channelCode string) (string, bool) {
	return lookup(m.channel, channelCode)
}

// VehicleSegment resolves the vehicle/usage segment from the usage-type and
// vehicle-class codes.
func (m *Mapper) VehicleSegment(usageCode, vehicleCode string) (string, bool) {
	return lookup(m.vehicle, strings.TrimSpace(usageCode)+"_"+strings.TrimSpace(vehicleCode))
}

func lookup(table map[string]string, key string) (string, bool) {
	v, ok := table[strings.TrimSpace(key)]
	return v, ok
}

// normalizeTable trims keys and values and drops entries that end up empty
// on either side. A trimmed key that collides with an existing one keeps
// the already-present value.
func normalizeTable(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}
