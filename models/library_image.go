package models

// LibraryImage represents one image of the personalization image library,
// synced from a Google Drive folder into the database.
type LibraryImage struct {
	ID          string `json:"id"`
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	Category    string `json:"category,omitempty"` // parsed from the filename prefix
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
}

// LibraryImageListResponse wraps a list of library images
type LibraryImageListResponse struct {
	Images []LibraryImage `json:"images"`
}

// SyncLibraryResponse reports the result of a Drive sync run
type SyncLibraryResponse struct {
	Inserted int            `json:"inserted"`
	Skipped  int            `json:"skipped"`
	Total    int            `json:"total"`
	Images   []LibraryImage `json:"images"`
}
