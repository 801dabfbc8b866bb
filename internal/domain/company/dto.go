package company

import (
	"strconv"

	"github.com/fleetdesk/attendance-backend-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name string `json:"name"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanyRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompanyResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	PresentCount      int    `json:"present_count"`
	AbsentCount       int    `json:"absent_count"`
	TotalDrivers      int    `json:"total_drivers"`
	PresentPercentage string `json:"present_percentage"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:                c.ID,
		Name:              c.Name,
		PresentCount:      c.PresentCount,
		AbsentCount:       c.AbsentCount,
		TotalDrivers:      c.TotalDrivers,
		PresentPercentage: strconv.FormatFloat(c.PresentPercentage, 'f', 1, 64),
	}
}

func NewCompanyResponses(companies []Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}
