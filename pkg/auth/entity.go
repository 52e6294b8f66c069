package auth

import (
	"time"
)

// UserType is the closed account classification carried in session tokens.
type UserType string

const (
	Applicant UserType = "applicant"
	Employer  UserType = "employer"
)

func (t UserType) Valid() bool { return t == Applicant || t == Employer }

// User is a registered account. JSON keys follow the portal's wire format.
type User struct {
	ID           string    `json:"_id"`
	UserType     UserType  `json:"userType"`
	FirstName    string    `json:"Firstname"`
	LastName     string    `json:"Lastname"`
	DateOfBirth  string    `json:"DateOfBirth"`
	Gender       string    `json:"Gender"`
	Email        string    `json:"Email"`
	PhoneNumber  string    `json:"PhoneNumber"`
	Origin       string    `json:"Origin"`
	CompanyName  *string   `json:"CompanyName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
