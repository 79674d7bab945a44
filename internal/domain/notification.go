package domain

// Notification is a user-facing notification owned by the backend.
type Notification struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
