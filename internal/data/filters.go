package data

import "shuvoedward/Theology_project/internal/validator"

type Filters struct {
	Page     int
	PageSize int
}

func (f Filters) limit() int {
	return f.PageSize
}

func (f Filters) offset() int {
	return (f.Page - 1) * f.PageSize
}

// Validate performs generic pagination validation
// Returns validator with errors if invalid
func (f *Filters) Validate(v *validator.Validator) {
	v.Check(f.Page > 0, "page", "must be atleast 1")
	v.Check(f.Page <= 10000, "page", "must be at most 10000")
	v.Check(f.PageSize > 0, "page_size", "must be at least 1")
	v.Check(f.PageSize <= 100, "page_size", "must be at most 100")
}

type Metadata struct {
	CurrentPage  int `json:"current_page,omitzero"`
	PageSize     int `json:"page_size,omitzero"`
	FirstPage    int `json:"first_page,omitzero"`
	LastPage     int `json:"last_page,omitzero"`
	TotalRecords int `json:"total_records,omitzero"`
}

func calculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		// Note that we return an empty Metadata struct if there are no records.
		return Metadata{}
	}

	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		TotalRecords: totalRecords,
	}
}
