package model

// Quote is parsed fresh from the CSV corpus on every request and is
// never persisted.
type Quote struct {
	Quote  string
	Author string
	Genre  string
}

// Blog is a single aesthetics post loaded from the blogs JSON map.
type Blog struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Image   string `json:"image"`
	Content string `json:"content"`
}
