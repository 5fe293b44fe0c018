package entities

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PageRequest selects a 1-based page of a newest-first listing.
type PageRequest struct {
	Page    int
	PerPage int
}

// NewPageRequest clamps page to >= 1 and perPage to [1, MaxPerPage],
// using def when perPage is not positive.
func NewPageRequest(page, perPage, def int) PageRequest {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = def
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return PageRequest{Page: page, PerPage: perPage}
}

// Offset is the number of items preceding the page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// EstimatePage is one page of estimate records plus the total count.
type EstimatePage struct {
	Items   []EstimateRecord
	Total   int
	Page    int
	PerPage int
}

// Pages is the number of pages needed for Total items.
func (p EstimatePage) Pages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// SlicePage cuts the requested page out of an already sorted slice.
func SlicePage(all []EstimateRecord, req PageRequest) EstimatePage {
	page := EstimatePage{Total: len(all), Page: req.Page, PerPage: req.PerPage, Items: []EstimateRecord{}}
	start := req.Offset()
	if start >= len(all) {
		return page
	}
	end := start + req.PerPage
	if end > len(all) {
		end = len(all)
	}
	page.Items = append(page.Items, all[start:end]...)
	return page
}
