package domain

import "time"

// Like registra que un usuario dio like a un comentario. El par
// (UserID, CommentID) es único en toda la tabla.
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CommentID string    `json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}
