package dto

import (
	"time"
)

// SignupRequest is the single canonical signup schema. It binds from JSON
// and from multipart form fields alike; the résumé file part is handled
// separately by the handler.
type SignupRequest struct {
	Firstname   string `json:"firstname" form:"firstname" validate:"required"`
	Lastname    string `json:"lastname" form:"lastname" validate:"required"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	CountryCode string `json:"country_code" form:"country_code" validate:"required"`
	Phone       string `json:"phone" form:"phone" validate:"required,national-phone"`

	// Optional: an account without a password can never log in
	Password string `json:"password,omitempty" form:"password" validate:"omitempty,min=6"`

	Gender          string `json:"gender,omitempty" form:"gender" validate:"omitempty,is-gender"`
	DateOfBirth     string `json:"date_of_birth,omitempty" form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	College         string `json:"college,omitempty" form:"college"`
	CurrentLocation string `json:"current_location,omitempty" form:"current_location"`
	HomeTown        string `json:"home_town,omitempty" form:"home_town"`
	Country         string `json:"country,omitempty" form:"country"`
	WorkExperience  string `json:"work_experience,omitempty" form:"work_experience" validate:"omitempty,is-work-experience"`

	PreferredWorkLocation string `json:"preferred_work_location,omitempty" form:"preferred_work_location"`
	PreferredWorkMode     string `json:"preferred_work_mode,omitempty" form:"preferred_work_mode"`

	// Booleans default to false when absent
	CareerPreferenceInternships bool `json:"career_preference_internships" form:"career_preference_internships"`
	CareerPreferenceJobs        bool `json:"career_preference_jobs" form:"career_preference_jobs"`
}

// SignupResponse mirrors the public signup contract.
type SignupResponse struct {
	Message   string `json:"message"`
	UserEmail string `json:"user_email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the user summary. The bearer token travels in the
// Authorization response header, not in the body.
type LoginResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

// UserDTO is the public view of a user record.
type UserDTO struct {
	ID        uint      `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	ResumeURL *string   `json:"resume_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ResumeUpload describes the file part of a multipart signup.
type ResumeUpload struct {
	OriginalName string
	ContentType  string
	Size         int64
}
