package models

// Role names for addresses attached to an event. The billing address is
// always present and always listed first.
const (
	AddressNameBilling  = "Billing address"
	AddressNameShipping = "Shipping address"
)

// Country is an ISO country code with its display name.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Address is a postal address with contact phone numbers.
type Address struct {
	Number  int      `json:"number"`
	Street  string   `json:"street"`
	City    string   `json:"city"`
	Zipcode string   `json:"zipcode"`
	Country Country  `json:"country"`
	Phones  []string `json:"phones"`
}

// NamedAddress tags an address with its role within an event
// (billing or shipping).
type NamedAddress struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}
