package domain

import "errors"

// ErrUnknownStatus returned when a status value is outside its closed set
var ErrUnknownStatus = errors.New("domain: unknown status")

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business constants
const (
	// SummaryWindowDays today plus the following six days
	SummaryWindowDays = 7

	MinPasswordLength = 8 // в символах, не в байтах
)

// Роли из access-токена
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)
