package hackathons

import "time"

// Constants for error messages
const (
	ErrHackathonNotFound       = "Hackathon not found"
	ErrCategoryNotFound        = "Category not found"
	ErrCriterionNotFound       = "Judging criterion not found"
	ErrNoPermissionManage      = "User does not have permission to manage hackathons"
	ErrFailedFetchHackathons   = "Failed to fetch hackathons"
	ErrFailedCreateHackathon   = "Failed to create hackathon"
	ErrFailedUpdateHackathon   = "Failed to update hackathon"
	ErrFailedDeleteHackathon   = "Failed to delete hackathon"
	ErrFailedActivateHackathon = "Failed to activate hackathon"
	ErrInvalidRequest          = "Invalid request data"
	ErrInvalidStatus           = "Invalid hackathon status"
	ErrInvalidWeight           = "Criterion weight must be between 1 and 100"
	ErrRegistrationClosed      = "Registration is not open for this hackathon"
	ErrAlreadyRegistered       = "Already registered for this hackathon"
	ErrNotRegistered           = "Not registered for this hackathon"
	ErrFailedRegister          = "Failed to register for hackathon"
)

// CreateHackathonRequest model for creating a hackathon
type CreateHackathonRequest struct {
	Name                string     `json:"name" binding:"required"`
	Slug                string     `json:"slug"`
	Description         *string    `json:"description"`
	StartAt             time.Time  `json:"start_at" binding:"required"`
	EndAt               time.Time  `json:"end_at" binding:"required"`
	RegistrationOpenAt  *time.Time `json:"registration_open_at"`
	RegistrationCloseAt *time.Time `json:"registration_close_at"`
}

// UpdateHackathonRequest model for updating a hackathon
type UpdateHackathonRequest struct {
	Name                *string    `json:"name"`
	Slug                *string    `json:"slug"`
	Description         *string    `json:"description"`
	StartAt             *time.Time `json:"start_at"`
	EndAt               *time.Time `json:"end_at"`
	RegistrationOpenAt  *time.Time `json:"registration_open_at"`
	RegistrationCloseAt *time.Time `json:"registration_close_at"`
}

// UpdateStatusRequest model for lifecycle status changes
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CategoryRequest model for creating or updating a category
type CategoryRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

// CriterionRequest model for creating or updating a judging criterion
type CriterionRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	Weight       int     `json:"weight" binding:"required"`
	DisplayOrder int     `json:"display_order"`
}
