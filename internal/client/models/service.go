package models

// Comment is a mural comment with display-ready fields. UserName is derived:
// the service owner's profile name when the comment author is the owner,
// otherwise the fixed support-team label. CreatedAt is already formatted for
// display.
type Comment struct {
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
	Content   string `json:"content"`
}

// ServiceRecord is a fully enriched service request as shown on the detail
// screen: comments carry derived author names and formatted dates, and the
// requested due date is rendered in display form.
type ServiceRecord struct {
	ID               int64        `json:"id"`
	Status           string       `json:"status"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	CreatedAt        string       `json:"created_at"`
	Comments         []Comment    `json:"comments"`
	RequestedDueDate string       `json:"requested_due_date"`
	User             *UserProfile `json:"user,omitempty"`
}

// ServiceSummary is the trimmed projection of a service record that the
// cache gate persists for list fetches.
type ServiceSummary struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// PageMeta mirrors the pagination block the backend returns with list
// responses.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// ServicePage couples a page of service records with its pagination meta.
type ServicePage struct {
	Services []ServiceRecord `json:"services"`
	Meta     PageMeta        `json:"meta"`
}
