package models

import (
	"encoding/json"
	"fmt"

	"faktur-backend/utils"
)

type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// UnmarshalJSON accepts quantity and price either as numbers or as the raw
// text of a form field; blank text coerces to 0.
func (item *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description string          `json:"description"`
		Quantity    json.RawMessage `json:"quantity"`
		Price       json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	qty, err := utils.WholeFromJSON(raw.Quantity)
	if err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	price, err := utils.NumberFromJSON(raw.Price)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*item = LineItem{Description: raw.Description, Quantity: qty, Price: price}
	return nil
}

// UnmarshalJSON applies the same coercion to the tax percentage.
func (inv *Invoice) UnmarshalJSON(data []byte) error {
	type plain Invoice
	var raw struct {
		plain
		Tax json.RawMessage `json:"tax"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tax, err := utils.NumberFromJSON(raw.Tax)
	if err != nil {
		return fmt.Errorf("tax: %w", err)
	}
	*inv = Invoice(raw.plain)
	inv.Tax = tax
	return nil
}
