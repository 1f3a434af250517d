package models

// NetworkCurrencyMapping pairs a payout network with one currency it supports.
// The upstream list is many-to-many; networks and currencies both repeat.
type NetworkCurrencyMapping struct {
	NetworkCode  string `json:"network_code"`
	NetworkName  string `json:"network_name"`
	CurrencyCode string `json:"currency_code"`
	CurrencyName string `json:"currency_name"`
}

type Network struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
