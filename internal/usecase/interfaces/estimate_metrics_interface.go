package interfaces

// IEstimateMetrics receives business events from the estimate use case.
type IEstimateMetrics interface {
	EstimateCalculated(quality string)
	CityFallback()
	PersistFailure()
}
