package entity

import "time"

type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Genre         string     `json:"genre"`
	Description   string     `json:"description,omitempty"`
	ISBN          string     `json:"isbn,omitempty"`
	PublishedYear int        `json:"publishedYear,omitempty"`
	Publisher     string     `json:"publisher,omitempty"`
	Pages         int        `json:"pages,omitempty"`
	CoverImage    string     `json:"coverImage,omitempty"`
	AddedBy       PublicUser `json:"addedBy"`
	AverageRating float64    `json:"averageRating"`
	TotalReviews  int        `json:"totalReviews"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
