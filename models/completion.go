package models

// Completion field names reported by MissingFields.
const (
	FieldNumber      = "number"
	FieldDate        = "date"
	FieldDueDate     = "dueDate"
	FieldFromName    = "from.name"
	FieldToName      = "to.name"
	FieldItems       = "items"
	FieldItemDetails = "items.details"
	FieldPaymentBank = "payment.bank"
)

type requirement struct {
	field string
	ok    func(inv Invoice) bool
}

var requirements = []requirement{
	{FieldNumber, func(inv Invoice) bool { return !IsMissing(inv.Number) }},
	{FieldDate, func(inv Invoice) bool { return !IsMissing(inv.Date) }},
	{FieldDueDate, func(inv Invoice) bool { return !IsMissing(inv.DueDate) }},
	{FieldFromName, func(inv Invoice) bool { return !IsMissing(inv.From.Name) }},
	{FieldToName, func(inv Invoice) bool { return !IsMissing(inv.To.Name) }},
	{FieldItems, func(inv Invoice) bool { return len(inv.Items) > 0 }},
	{FieldItemDetails, func(inv Invoice) bool {
		for _, item := range inv.Items {
			if IsMissing(item.Description) || !(item.Price > 0) {
				return false
			}
		}
		return true
	}},
	{FieldPaymentBank, func(inv Invoice) bool { return !IsMissing(inv.Payment.Bank) }},
}

// IsMissing reports whether a form value counts as not filled in: nil, a nil
// pointer, or an empty string. It only drives highlighting and the
// completion score; it never blocks preview or export.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *string:
		return x == nil || *x == ""
	case *int:
		return x == nil
	case *float64:
		return x == nil
	}
	return false
}

// MissingFields lists the unmet requirements in a fixed order.
func MissingFields(inv Invoice) []string {
	missing := []string{}
	for _, r := range requirements {
		if !r.ok(inv) {
			missing = append(missing, r.field)
		}
	}
	return missing
}

// CompletionPercent is satisfied/total requirements as a whole percentage,
// rounded half up (7 of 8 is 88).
func CompletionPercent(inv Invoice) int {
	total := len(requirements)
	done := total - len(MissingFields(inv))
	return (done*100*2 + total) / (total * 2)
}
