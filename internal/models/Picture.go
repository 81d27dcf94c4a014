package models

// Picture is NASA's Astronomy Picture of the Day.
type Picture struct {
	Date        string `json:"date" example:"2025-07-25"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	MediaType   string `json:"media_type" example:"image"`
	Copyright   string `json:"copyright,omitempty"`
}
