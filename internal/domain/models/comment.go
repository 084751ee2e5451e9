package models

import "time"

// Comment is review feedback on a shot. Author, AuthorUsername and
// AuthorRole are snapshots taken at creation time; later role changes
// do not rewrite history. AuthorUsername is the identity the edit and
// delete checks key on, since usernames are unique and display names
// are not.
type Comment struct {
	ID             string    `json:"id" db:"id"`
	ShotID         string    `json:"shot_id" db:"shot_id"`
	Author         string    `json:"author" db:"author"`
	AuthorUsername string    `json:"author_username" db:"author_username"`
	AuthorRole     string    `json:"author_role" db:"author_role"`
	Text           string    `json:"text" db:"text"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
