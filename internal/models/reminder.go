package models

// Reminder represents a single tracked reminder.
//
// DueDate and CreatedAt are stored as the raw strings the client supplied.
// DueDate may be empty, an RFC 3339 timestamp with offset, or a
// minute-precision wall-clock value (2006-01-02T15:04) with no offset that is
// interpreted in the device's local timezone. CreatedAt is always RFC 3339.
type Reminder struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at"`
	TagIDs      []string `json:"tag_ids"`
}

// Tag represents a user-defined label. Tags are referenced by ID from
// Reminder.TagIDs but never owned by a reminder; deleting a tag leaves any
// dangling references in place and the consumer renders them as "no tag".
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Statistics holds derived counts over a reminder collection. It is never
// persisted; it is recomputed from the collection and the wall clock on
// every request.
type Statistics struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}
