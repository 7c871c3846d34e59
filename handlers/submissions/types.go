package submissions

// Error messages returned by submission endpoints
const (
	ErrTeamNotFound         = "Team not found"
	ErrSubmissionNotFound   = "Submission not found"
	ErrNotTeamMember        = "You are not part of this team"
	ErrSubmissionWindow     = "Submissions are not open for this hackathon"
	ErrInvalidCategory      = "Category does not belong to this hackathon"
	ErrInvalidRequest       = "Invalid request data"
	ErrFailedFetch          = "Failed to fetch submission"
	ErrFailedSave           = "Failed to save submission"
	ErrFailedSubmit         = "Failed to submit project"
)

// UpsertSubmissionRequest carries the editable submission fields
type UpsertSubmissionRequest struct {
	CategoryID string  `json:"category_id" binding:"required,uuid"`
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	RepoURL    string  `json:"repo_url" binding:"required,url,max=255"`
	DemoURL    *string `json:"demo_url" binding:"omitempty,url,max=255"`
	Summary    *string `json:"summary" binding:"omitempty,max=2000"`
}
