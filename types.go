package veria

import "fmt"

// Risk is the categorical risk tier derived server-side from the score.
type Risk string

const (
	RiskLow      Risk = "low"
	RiskMedium   Risk = "medium"
	RiskHigh     Risk = "high"
	RiskCritical Risk = "critical"
)

// AddressType classifies the screened address.
type AddressType string

const (
	AddressTypeWallet   AddressType = "wallet"
	AddressTypeContract AddressType = "contract"
	AddressTypeExchange AddressType = "exchange"
	AddressTypeMixer    AddressType = "mixer"
	AddressTypeENS      AddressType = "ens"
	AddressTypeIBAN     AddressType = "iban"
)

// ScreenDetails holds the per-list screening outcome.
type ScreenDetails struct {
	SanctionsHit bool        `json:"sanctions_hit"` // present on a sanctions list
	PEPHit       bool        `json:"pep_hit"`       // politically exposed person match
	WatchlistHit bool        `json:"watchlist_hit"` // present on any other watchlist
	CheckedLists []string    `json:"checked_lists"` // sanctions databases consulted
	AddressType  AddressType `json:"address_type"`
}

// ScreenResult is the outcome of screening a single address. It is populated
// once from the API response and not mutated afterwards.
type ScreenResult struct {
	Score     int           `json:"score"`      // risk score, 0-100
	Risk      Risk          `json:"risk"`       // tier derived from Score
	Chain     string        `json:"chain"`      // detected blockchain
	Resolved  string        `json:"resolved"`   // canonical address (ENS resolved to hex)
	LatencyMS int           `json:"latency_ms"` // server-reported processing time
	Details   ScreenDetails `json:"details"`
}

// RiskForScore maps a score onto its tier: 0-29 low, 30-59 medium,
// 60-79 high, 80-100 critical.
func RiskForScore(score int) Risk {
	switch {
	case score < 30:
		return RiskLow
	case score < 60:
		return RiskMedium
	case score < 80:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// ShouldBlock reports whether the address should be blocked for compliance:
// a sanctions hit, or a high or critical risk tier.
func (r *ScreenResult) ShouldBlock() bool {
	return r.Details.SanctionsHit || r.Risk == RiskHigh || r.Risk == RiskCritical
}

// Validate checks that the server-reported tier is consistent with the score
// bands. The tier is authoritative; this is a defensive check only and is not
// applied by Screen.
func (r *ScreenResult) Validate() error {
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("score %d out of range [0,100]", r.Score)
	}
	if want := RiskForScore(r.Score); r.Risk != want {
		return fmt.Errorf("risk %q inconsistent with score %d (want %q)", r.Risk, r.Score, want)
	}
	return nil
}
