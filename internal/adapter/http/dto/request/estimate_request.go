package request

import (
	"construction_estimator/internal/domain/entities"
	"errors"
)

var (
	ErrMissingProjectSize = errors.New("projectSize is required")
)

// CalculateEstimateRequest is the body of POST /estimates/calculate. Field
// names follow the web client's form.
type CalculateEstimateRequest struct {
	ProjectName     string     `json:"projectName"`
	ProjectSize     FlexFloat  `json:"projectSize" swaggertype:"number"`
	Location        string     `json:"location"`
	MaterialQuality string     `json:"materialQuality"`
	Floors          FlexInt    `json:"floors" swaggertype:"integer"`
	Rooms           FlexInt    `json:"rooms" swaggertype:"integer"`
	CeilingHeight   FlexString `json:"ceilingHeight" swaggertype:"string"`
	Finishes        FlexBool   `json:"finishes" swaggertype:"string"`
	FinishesQuality string     `json:"finishesQuality"`
}

// ToProjectSpec maps the payload to a spec. An omitted floor count defaults
// here; the other defaults are applied later by ProjectSpec.Normalize.
func (r CalculateEstimateRequest) ToProjectSpec() (entities.ProjectSpec, error) {
	if !r.ProjectSize.Set {
		return entities.ProjectSpec{}, ErrMissingProjectSize
	}
	spec := entities.ProjectSpec{
		ProjectName:      r.ProjectName,
		Area:             r.ProjectSize.Value,
		Location:         r.Location,
		QualityTier:      entities.QualityTier(r.MaterialQuality),
		Rooms:            r.Rooms.Value,
		CeilingHeight:    entities.CeilingHeightBand(r.CeilingHeight),
		IncludesFinishes: bool(r.Finishes),
		FinishesQuality:  entities.QualityTier(r.FinishesQuality),
	}
	spec.Floors = entities.DefaultFloors
	if r.Floors.Set {
		spec.Floors = r.Floors.Value
	}
	return spec, nil
}
