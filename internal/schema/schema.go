package schema

import (
	"time"

	"github.com/yanun0323/errors"
)

// SectorUnknown is the sentinel sector value. Assets carrying it never take
// part in sector affinity.
const SectorUnknown = "Unknown"

var (
	ErrEmptyAssetID      = errors.New("asset id is empty")
	ErrUnknownAssetClass = errors.New("asset class is unknown")
	ErrNegativePrice     = errors.New("asset price is negative")
	ErrEmptyEventID      = errors.New("event id is empty")
	ErrEmptyEventSubject = errors.New("event asset id is empty")
	ErrImpactOutOfRange  = errors.New("event impact score out of range")
)

// AssetClass identifies the kind of financial instrument.
type AssetClass uint8

const (
	_assetClass_beg AssetClass = iota
	AssetClassEquity
	AssetClassFixedIncome
	AssetClassCommodity
	AssetClassCurrency
	AssetClassDerivative
	_assetClass_end
)

var assetClassNames = map[AssetClass]string{
	AssetClassEquity:      "equity",
	AssetClassFixedIncome: "fixed_income",
	AssetClassCommodity:   "commodity",
	AssetClassCurrency:    "currency",
	AssetClassDerivative:  "derivative",
}

func (c AssetClass) IsAvailable() bool {
	return c > _assetClass_beg && c < _assetClass_end
}

func (c AssetClass) String() string {
	if name, ok := assetClassNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the class as its snake_case name so JSON fields and
// map keys carry the stored representation.
func (c AssetClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a snake_case class name.
func (c *AssetClass) UnmarshalText(text []byte) error {
	name := string(text)
	for class, candidate := range assetClassNames {
		if candidate == name {
			*c = class
			return nil
		}
	}
	return errors.Wrap(ErrUnknownAssetClass, name)
}

// Asset is a financial instrument record. The registry owns stored copies.
type Asset struct {
	ID        string     `json:"id"`
	Symbol    string     `json:"symbol"`
	Name      string     `json:"name"`
	Class     AssetClass `json:"asset_class"`
	Sector    string     `json:"sector"`
	Price     float64    `json:"price"`
	MarketCap float64    `json:"market_cap,omitempty"`
	Currency  string     `json:"currency,omitempty"`

	// Class-specific optional fields. IssuerID is set on fixed income,
	// ExchangeRate on currencies, PERatio on equities.
	IssuerID     string  `json:"issuer_id,omitempty"`
	CouponRate   float64 `json:"coupon_rate,omitempty"`
	PERatio      float64 `json:"pe_ratio,omitempty"`
	ExchangeRate float64 `json:"exchange_rate,omitempty"`
}

// Validate rejects clearly invalid field values. Invalid assets must never
// reach the registry.
func (a Asset) Validate() error {
	if a.ID == "" {
		return ErrEmptyAssetID
	}
	if !a.Class.IsAvailable() {
		return errors.Wrap(ErrUnknownAssetClass, a.ID)
	}
	if a.Price < 0 {
		return errors.Wrap(ErrNegativePrice, a.ID)
	}
	return nil
}

// RelationshipType tags the meaning of an edge.
type RelationshipType string

const (
	RelationSameSector    RelationshipType = "same_sector"
	RelationCorporateLink RelationshipType = "corporate_link"
	RelationEventImpact   RelationshipType = "event_impact"
)

// Relationship is a directed, typed, weighted edge between two asset ids.
// Strength is conventionally within 0..1 but not enforced.
type Relationship struct {
	SourceID string           `json:"source_id"`
	TargetID string           `json:"target_id"`
	Type     RelationshipType `json:"relationship_type"`
	Strength float64          `json:"strength"`
}

// EventType categorizes a regulatory event.
type EventType string

const (
	EventAnnouncement     EventType = "announcement"
	EventPolicyChange     EventType = "policy_change"
	EventComplianceAction EventType = "compliance_action"
	EventInvestigation    EventType = "investigation"
	EventSanction         EventType = "sanction"
)

// RegulatoryEvent is an immutable input connecting a subject asset to the
// assets it impacts. Events never become graph vertices by themselves.
type RegulatoryEvent struct {
	ID            string    `json:"id"`
	AssetID       string    `json:"asset_id"`
	Type          EventType `json:"event_type"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description,omitempty"`
	ImpactScore   float64   `json:"impact_score"`
	RelatedAssets []string  `json:"related_assets"`
}

// Validate rejects clearly invalid field values. ImpactScore must stay
// within -1..1.
func (e RegulatoryEvent) Validate() error {
	if e.ID == "" {
		return ErrEmptyEventID
	}
	if e.AssetID == "" {
		return errors.Wrap(ErrEmptyEventSubject, e.ID)
	}
	if e.ImpactScore < -1 || e.ImpactScore > 1 {
		return errors.Wrap(ErrImpactOutOfRange, e.ID)
	}
	return nil
}
