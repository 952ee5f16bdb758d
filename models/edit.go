package models

import (
	"fmt"
	"strconv"
	"strings"

	"faktur-backend/utils"
)

// WithField returns a copy of inv with one field replaced by the text value a
// user typed. Paths follow the json names: "number", "from.name",
// "payment.bank", "items.2.price" and so on. Numeric fields go through the
// same coercion as form input, so "" becomes 0.
func (inv Invoice) WithField(path, value string) (Invoice, error) {
	out := inv.Clone()
	parts := strings.Split(path, ".")
	switch parts[0] {
	case "number":
		out.Number = value
	case "date":
		out.Date = value
	case "dueDate":
		out.DueDate = value
	case "notes":
		out.Notes = value
	case "tax":
		tax, err := utils.ParseNumber(value)
		if err != nil {
			return inv, fmt.Errorf("tax: %w", err)
		}
		out.Tax = tax
	case "from", "to":
		if len(parts) != 2 {
			return inv, fmt.Errorf("unknown field %q", path)
		}
		c := &out.From
		if parts[0] == "to" {
			c = &out.To
		}
		if err := c.set(parts[1], value); err != nil {
			return inv, fmt.Errorf("%s: %w", parts[0], err)
		}
	case "payment":
		if len(parts) != 2 {
			return inv, fmt.Errorf("unknown field %q", path)
		}
		if err := out.Payment.set(parts[1], value); err != nil {
			return inv, fmt.Errorf("payment: %w", err)
		}
	case "items":
		if len(parts) != 3 {
			return inv, fmt.Errorf("unknown field %q", path)
		}
		i, err := strconv.Atoi(parts[1])
		if err != nil || i < 0 || i >= len(out.Items) {
			return inv, fmt.Errorf("item index %q out of range", parts[1])
		}
		if err := out.Items[i].set(parts[2], value); err != nil {
			return inv, fmt.Errorf("items[%d]: %w", i, err)
		}
	default:
		return inv, fmt.Errorf("unknown field %q", path)
	}
	return out, nil
}

func (c *Contact) set(field, value string) error {
	switch field {
	case "name":
		c.Name = value
	case "email":
		c.Email = value
	case "phone":
		c.Phone = value
	case "address":
		c.Address = value
	case "npwp":
		c.NPWP = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func (p *PaymentInfo) set(field, value string) error {
	switch field {
	case "bank":
		p.Bank = value
	case "accountNumber":
		p.AccountNumber = value
	case "accountName":
		p.AccountName = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func (item *LineItem) set(field, value string) error {
	switch field {
	case "description":
		item.Description = value
	case "quantity":
		qty, err := utils.ParseWhole(value)
		if err != nil {
			return err
		}
		item.Quantity = qty
	case "price":
		price, err := utils.ParseNumber(value)
		if err != nil {
			return err
		}
		item.Price = price
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}
