package model

// Profile is the public-facing page of an account, keyed by the same
// email. It only exists once the user has inscribed their details.
type Profile struct {
	Email    string `gorm:"primaryKey"`
	Name     string
	Title    string
	Quote    string
	Bio      string
	Joined   string
	ImageURL string

	// Optional fields, empty unless the user filled them in
	Thinkers    string
	Allegiances string
	Relics      string
	Annotations string
	Visions     string
}
