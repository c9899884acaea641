package calendar

import (
	"strings"

	"donor-booking/internal/pkg/errs"
)

// Category is the blood group a visit is booked under.
type Category string

const (
	APositive  Category = "A+"
	ANegative  Category = "A-"
	BPositive  Category = "B+"
	BNegative  Category = "B-"
	ABPositive Category = "AB+"
	ABNegative Category = "AB-"
	OPositive  Category = "O+"
	ONegative  Category = "O-"
)

var Categories = [...]Category{APositive, ANegative, BPositive, BNegative, ABPositive, ABNegative, OPositive, ONegative}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", errs.Mark(errs.Newf("unknown blood group: %q", s), errs.ErrInvalidInput)
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
