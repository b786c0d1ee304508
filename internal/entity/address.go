package entity

// Address is a value record owned by at most one freelancer.
type Address struct {
	ID          int64  `json:"id"`
	Street      string `json:"street" validate:"required"`
	HouseNumber string `json:"houseNumber" validate:"required"`
	City        string `json:"city" validate:"required"`
	PostalCode  string `json:"postalCode" validate:"required,len=5,number"`
}

// AddressParams carries the fields of a new address.
type AddressParams struct {
	Street      string
	HouseNumber string
	City        string
	PostalCode  string
}

// NewAddress validates params and constructs an unsaved address.
func NewAddress(params AddressParams) (*Address, error) {
	a := &Address{
		Street:      params.Street,
		HouseNumber: params.HouseNumber,
		City:        params.City,
		PostalCode:  params.PostalCode,
	}
	if err := runValidate(a); err != nil {
		return nil, err
	}

	return a, nil
}

// AddressRef returns a reference placeholder carrying only the id, to be
// hydrated by the service layer.
func AddressRef(id int64) *Address {
	return &Address{ID: id}
}

func (a *Address) EntityID() int64 { return a.ID }

func (a *Address) Kind() string { return KindAddress }
