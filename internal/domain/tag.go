package domain

// Tag labels notes. Names are unique across tags.
type Tag struct {
	Record
	Name string `json:"name"`
}
