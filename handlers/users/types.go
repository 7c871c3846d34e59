package users

// Error messages constants
const (
	ErrUserNotFound         = "User not found"
	ErrInvalidRole          = "Invalid role"
	ErrFailedToHashPassword = "Failed to hash password"
	ErrFailedToGetUsers     = "Failed to get users"
	ErrFailedToUpdateUser   = "Failed to update user"
	ErrFailedToDeleteUser   = "Failed to delete user"
	ErrNoPermissionDelete   = "User does not have permission to delete this user"
	ErrCannotDemoteSelf     = "Admins cannot change their own role"
	ErrEmailInUse           = "Email is already in use"
)

// ProfileUpdateRequest carries the fields a user may edit on their own profile
type ProfileUpdateRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Firstname    string  `json:"firstname" binding:"required,min=1,max=100"`
	Lastname     string  `json:"lastname" binding:"required,min=1,max=100"`
	AvatarURL    *string `json:"avatar_url" binding:"omitempty,url,max=255"`
	Organization *string `json:"organization" binding:"omitempty,max=255"`
	Title        *string `json:"title" binding:"omitempty,max=255"`
}

// ChangeRoleRequest assigns a platform role to a user
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
