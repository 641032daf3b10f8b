package domain

// Folder groups notes. Names are unique across folders.
type Folder struct {
	Record
	Name string `json:"name"`
}
