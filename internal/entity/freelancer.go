package entity

import "github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"

// Freelancer owns its address row by foreign key.
type Freelancer struct {
	ID           int64    `json:"id"`
	FirstName    string   `json:"firstName" validate:"required"`
	LastName     string   `json:"lastName" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	PhoneNumber  string   `json:"phoneNumber" validate:"required,len=10,number"`
	Address      *Address `json:"address,omitempty" validate:"-"`
	BusinessName string   `json:"businessName" validate:"required"`
	BusinessIDNo string   `json:"businessIdNo" validate:"required"`
	BankAccount  string   `json:"bankAccountNo" validate:"required,iban"`
	Active       bool     `json:"active"`
}

// FreelancerParams carries the fields of a new freelancer. Address may be a
// fully populated value (persisted together with the freelancer) or a
// reference to an existing row.
type FreelancerParams struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Address      *Address
	BusinessName string
	BusinessIDNo string
	BankAccount  string
	Active       bool
}

// NewFreelancer validates params and constructs an unsaved freelancer.
func NewFreelancer(params FreelancerParams) (*Freelancer, error) {
	f := &Freelancer{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PhoneNumber:  params.PhoneNumber,
		Address:      params.Address,
		BusinessName: params.BusinessName,
		BusinessIDNo: params.BusinessIDNo,
		BankAccount:  params.BankAccount,
		Active:       params.Active,
	}
	if f.Address == nil {
		return nil, apperror.Validation("address is required")
	}
	if err := runValidate(f); err != nil {
		return nil, err
	}

	return f, nil
}

// FreelancerRef returns a reference placeholder carrying only the id.
func FreelancerRef(id int64) *Freelancer {
	return &Freelancer{ID: id}
}

func (f *Freelancer) EntityID() int64 { return f.ID }

func (f *Freelancer) Kind() string { return KindFreelancer }
