package models

// MetaTag holds the SEO metadata of one site page
type MetaTag struct {
	ID          string `json:"_id,omitempty"`
	Page        string `json:"page"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
}

// EmailMessage is a rich-text email or report composed in the admin panel
type EmailMessage struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}
