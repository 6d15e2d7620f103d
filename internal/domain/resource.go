package domain

import (
	"fmt"
	"time"
)

// ResourceStatus operational status of a lab computer
type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceMaintenance ResourceStatus = "maintenance"
	ResourceOffline     ResourceStatus = "offline"
)

// ParseResourceStatus converts a raw value into a known status
func ParseResourceStatus(s string) (ResourceStatus, error) {
	switch ResourceStatus(s) {
	case ResourceAvailable, ResourceMaintenance, ResourceOffline:
		return ResourceStatus(s), nil
	default:
		return "", fmt.Errorf("%w: resource status %q", ErrUnknownStatus, s)
	}
}

// Resource a reservable lab computer
type Resource struct {
	ID        string // например pc-01
	Name      string
	Status    ResourceStatus // меняет только администратор
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if new reservations may be placed on the resource
func (r *Resource) IsAvailable() bool {
	return r.Status == ResourceAvailable
}
