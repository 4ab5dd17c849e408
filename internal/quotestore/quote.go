package quotestore

import (
	"time"
)

// Quote is a single row of the quotes table.
type Quote struct {
	ID         string    `db:"id" json:"id"`
	Book       string    `db:"book" json:"book"`
	Quote      string    `db:"quote" json:"quote"`
	InsertedAt time.Time `db:"inserted_at" json:"inserted_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type UpdateRequest struct {
	ID        string
	Book      string
	Quote     string
	UpdatedAt time.Time
}

func (q *Quote) normalize() {
	q.InsertedAt = q.InsertedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()
}
