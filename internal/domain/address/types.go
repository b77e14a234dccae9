package address

// Address is a frozen postal address copied onto invoices. Address CRUD is an
// external collaborator; this core only reads.
type Address struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (a Address) IsZero() bool {
	return a == Address{}
}
