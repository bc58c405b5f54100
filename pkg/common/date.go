package common

import (
	"time"
)

type Date struct {
	Year  int32
	Month int32
	Day   int32
}

func (d *Date) Equal(o *Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d *Date) ToDate() time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
}

func (d *Date) String() string {
	return d.ToDate().Format(time.DateOnly)
}
