package models

// Testimonial is a customer review shown on the storefront
type Testimonial struct {
	Name  string `json:"name"`
	Text  string `json:"text"`
	Stars int    `json:"stars"`
}
