package models

// Dish is a single menu entry. The id is assigned by the server on
// create and never changes afterwards; dishes are never deleted.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}
