package model

// Journal is a single reading-journal entry. UserEmail is the owner and
// every read/update/delete must match it against the session email.
type Journal struct {
	ID            string `gorm:"primaryKey"`
	UserEmail     string `gorm:"index;not null"`
	Title         string
	Author        string
	CoverImageURL string
	Tags          StringSlice
	Theme         string
	DateStarted   string
	DateFinished  string
	Status        string
	IsHidden      bool
	RatingCrowns  int
	Quotes        string

	Reflection         string
	ThoughtsCharacters string
	ThoughtsPlot       string
}
