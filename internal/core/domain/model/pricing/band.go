package pricing

import (
	"fmt"

	"taza/internal/pkg/errs"
)

// Band classifies how far an offered price deviates from the category market
// average. Bands are ordered by deviation: TooLow sits below the market,
// VIP above it.
type Band int

const (
	// BandUnknown represents an invalid or undefined band.
	BandUnknown Band = iota

	// TooLow marks offers at or below -30% of the market average.
	// Suspicious pricing that usually signals corner-cutting.
	TooLow

	// ModeratelyLow marks offers between -30% and -10% of the average.
	ModeratelyLow

	// Fair marks market-aligned offers within ±10% of the average.
	Fair

	// Premium marks offers between +10% and +30% above the average,
	// typically justified by quality.
	Premium

	// VIP marks offers above +30%, luxury positioning.
	VIP
)

// bandInfo carries the presentation attributes attached to a band.
type bandInfo struct {
	id           string
	label        string
	color        string
	severityRank int
}

// Severity ranks signal how much caution a band deserves. Below-market bands
// carry the highest ranks because suspiciously cheap offers are the primary
// fraud vector; VIP is flagged but least severe.
func getBandInfos() map[Band]bandInfo {
	return map[Band]bandInfo{
		TooLow:        {id: "too_low", label: "Подозрительно дёшево", color: "#E53935", severityRank: 4},
		ModeratelyLow: {id: "moderately_low", label: "Ниже рынка", color: "#FB8C00", severityRank: 3},
		Fair:          {id: "fair", label: "Справедливая цена", color: "#43A047", severityRank: 0},
		Premium:       {id: "premium", label: "Выше рынка", color: "#1E88E5", severityRank: 1},
		VIP:           {id: "vip", label: "VIP-сегмент", color: "#8E24AA", severityRank: 2},
	}
}

// ID returns the stable machine identifier of the band ("too_low", "fair", ...).
func (b Band) ID() string {
	if info, ok := getBandInfos()[b]; ok {
		return info.id
	}
	return "unknown"
}

// Label returns the human-readable label shown next to the Taza Index.
func (b Band) Label() string {
	if info, ok := getBandInfos()[b]; ok {
		return info.label
	}
	return "Unknown"
}

// Color returns the UI accent color associated with the band.
func (b Band) Color() string {
	if info, ok := getBandInfos()[b]; ok {
		return info.color
	}
	return "#9E9E9E"
}

// SeverityRank returns the caution rank of the band. Higher means more
// suspicious; Fair is 0.
func (b Band) SeverityRank() int {
	if info, ok := getBandInfos()[b]; ok {
		return info.severityRank
	}
	return 0
}

// String implements fmt.Stringer using the band identifier.
func (b Band) String() string {
	return b.ID()
}

// BandFromID parses a band from its stable machine identifier.
func BandFromID(id string) (Band, error) {
	for band, info := range getBandInfos() {
		if info.id == id {
			return band, nil
		}
	}
	return BandUnknown, errs.NewValueIsInvalidErrorWithCause("band",
		fmt.Errorf("%q is not a valid band", id))
}

// bandForDelta maps a signed percentage deviation onto its band. Thresholds
// are evaluated from the most negative deviation up; the fair band is
// inclusive on both edges so a market-priced offer never leaves it.
func bandForDelta(deltaPercent int) Band {
	switch {
	case deltaPercent <= -30:
		return TooLow
	case deltaPercent < -10:
		return ModeratelyLow
	case deltaPercent <= 10:
		return Fair
	case deltaPercent <= 30:
		return Premium
	default:
		return VIP
	}
}
