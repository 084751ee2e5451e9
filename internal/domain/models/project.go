package models

import "time"

type Project struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Short       string    `json:"short" db:"short"`
	StartDate   string    `json:"start_date" db:"start_date"`
	DetailsText string    `json:"details_text" db:"details_text"`
	FolderPath  string    `json:"folder_path" db:"folder_path"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
