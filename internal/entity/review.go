package entity

import "time"

type Review struct {
	ID        string     `json:"id"`
	BookID    string     `json:"book"`
	User      PublicUser `json:"user"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment,omitempty"`
	Helpful   int        `json:"helpful"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
