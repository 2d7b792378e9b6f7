package models

// OnlineCustomer identifies the customer behind an online order or a
// return request. Customers typically register more than one email.
type OnlineCustomer struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Emails []string `json:"emails"`
}
