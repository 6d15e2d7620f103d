package clock

import (
	"fmt"
	"time"
)

// Clock текущее время в часовом поясе лаборатории
type Clock struct {
	loc *time.Location
}

// New создает часы для IANA-зоны (например, "Asia/Seoul"); пустая строка - локальная зона
func New(timezone string) (*Clock, error) {
	if timezone == "" {
		return &Clock{loc: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("clock: load location %q: %w", timezone, err)
	}
	return &Clock{loc: loc}, nil
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}
