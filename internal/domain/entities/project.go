package entities

import (
	"errors"
	"strings"
)

var (
	ErrInvalidArea   = errors.New("invalid area")
	ErrInvalidFloors = errors.New("invalid floors")
	ErrInvalidRooms  = errors.New("invalid rooms")
)

// QualityTier scales material unit rates and, for cement and steel, quantity.
//
// Values outside the three known tiers are kept as-is: they resolve to a zero
// material rate and a neutral quality factor instead of failing the request.
type QualityTier string

const (
	QualityStandard QualityTier = "standard"
	QualityPremium  QualityTier = "premium"
	QualityLuxury   QualityTier = "luxury"
)

// ParseQualityTier trims and lowercases raw input. Empty input maps to standard.
func ParseQualityTier(raw string) QualityTier {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return QualityStandard
	}
	return QualityTier(v)
}

// Known reports whether t is one of standard, premium or luxury.
func (t QualityTier) Known() bool {
	switch t {
	case QualityStandard, QualityPremium, QualityLuxury:
		return true
	}
	return false
}

// CeilingHeightBand is the declared ceiling height in feet ("10", "12", "14").
type CeilingHeightBand string

const (
	CeilingHeight10 CeilingHeightBand = "10"
	CeilingHeight12 CeilingHeightBand = "12"
	CeilingHeight14 CeilingHeightBand = "14"
)

const (
	DefaultProjectName = "Untitled Project"
	DefaultLocation    = "Karachi"
	DefaultFloors      = 1
)

// ProjectSpec is the input of a single estimate calculation.
//
// Area is the square footage of one floor.
type ProjectSpec struct {
	ProjectName      string            `json:"project_name"`
	Area             float64           `json:"total_area"`
	Location         string            `json:"location"`
	QualityTier      QualityTier       `json:"material_quality"`
	Floors           int               `json:"num_floors"`
	Rooms            int               `json:"num_rooms"`
	CeilingHeight    CeilingHeightBand `json:"ceiling_height"`
	IncludesFinishes bool              `json:"includes_finishes"`
	FinishesQuality  QualityTier       `json:"finishes_quality"`
}

// Normalize fills the documented defaults. Unrecognized ceiling bands fall
// back to "10"; unrecognized tiers are kept (see QualityTier). Floors has no
// zero-value default: an omitted floor count is filled by the request
// decoder, so an explicit 0 still fails Validate.
func (s ProjectSpec) Normalize() ProjectSpec {
	s.ProjectName = strings.TrimSpace(s.ProjectName)
	if s.ProjectName == "" {
		s.ProjectName = DefaultProjectName
	}
	s.Location = strings.TrimSpace(s.Location)
	if s.Location == "" {
		s.Location = DefaultLocation
	}
	s.QualityTier = ParseQualityTier(string(s.QualityTier))
	s.FinishesQuality = ParseQualityTier(string(s.FinishesQuality))
	switch CeilingHeightBand(strings.TrimSpace(string(s.CeilingHeight))) {
	case CeilingHeight10, CeilingHeight12, CeilingHeight14:
		s.CeilingHeight = CeilingHeightBand(strings.TrimSpace(string(s.CeilingHeight)))
	default:
		s.CeilingHeight = CeilingHeight10
	}
	return s
}

// Validate rejects specs that must not reach the costing engine.
func (s ProjectSpec) Validate() error {
	if s.Area <= 0 {
		return ErrInvalidArea
	}
	if s.Floors < 1 {
		return ErrInvalidFloors
	}
	if s.Rooms < 0 {
		return ErrInvalidRooms
	}
	return nil
}
