package model

import (
	"fmt"
	"time"
)

// Date is a civil day, i.e. a calendar date without a time component.
// All dates in this package are interpreted in UTC.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf returns the UTC civil day the given instant falls on.
func DateOf(t time.Time) Date {
	year, month, day := t.UTC().Date()
	return Date{Year: year, Month: int(month), Day: day}
}

func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ToGotime returns UTC midnight at the start of the receiver.
func (d Date) ToGotime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}
