package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateString = errors.New("invalid date string format")

// DateString календарная дата в формате YYYY-MM-DD
// Для валидных значений лексикографический порядок совпадает с хронологическим
type DateString string

// NewDateString дата из time.Time (в его локации)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// ParseDateString парсит и валидирует строку
func ParseDateString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет формат и корректность календарной даты
func (d DateString) Validate() error {
	if len(d) != len(dateLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

func (d DateString) String() string {
	return string(d)
}

func (d DateString) IsZero() bool {
	return d == ""
}

// In начало дня в указанной локации
func (d DateString) In(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// AddDays сдвигает дату на n календарных дней
// Для невалидной даты возвращает её же
func (d DateString) AddDays(n int) DateString {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return d
	}
	return NewDateString(t.AddDate(0, 0, n))
}

func (d DateString) Before(other DateString) bool {
	return d < other
}

func (d DateString) After(other DateString) bool {
	return d > other
}

// Between true если from <= d <= to
func (d DateString) Between(from, to DateString) bool {
	return d >= from && d <= to
}

// Scan реализует sql.Scanner (DATE приходит из lib/pq как time.Time)
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDateString, src)
	}
}

func (d *DateString) scanString(s string) error {
	// lib/pq может отдать DATE как "2025-10-15T00:00:00Z"
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDateString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d DateString) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}
