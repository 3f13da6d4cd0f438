package menu

import "strings"

const (
	FieldDays  = "days"
	FieldItems = "items"
)

// ValidationErrors maps a field to a human readable message.
// An empty map means the assignment can be submitted.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, field := range []string{FieldDays, FieldItems} {
		if msg, ok := v[field]; ok {
			msgs = append(msgs, field+": "+msg)
		}
	}
	return "invalid menu: " + strings.Join(msgs, "; ")
}

// Validate checks the assignment before submit.
func (a *Assignment) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if a.mode == ModeDaySpecific && len(a.selected) == 0 {
		errs[FieldDays] = "select at least one day"
	}
	if a.TotalSelectedCount() == 0 {
		errs[FieldItems] = "select at least one menu item"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
