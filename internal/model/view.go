package model

// View is what a renderer needs to draw the widget.
type View struct {
	Snapshot   *Snapshot `json:"snapshot,omitempty"`
	Status     string    `json:"status,omitempty"`
	Favorites  []string  `json:"favorites"`
	KeyPresent bool      `json:"key_present"`
}
