package domain

import (
	"strings"
	"time"
)

// Comment es un comentario sobre un perfil, con votos opcionales de
// personalidad y un contador de likes denormalizado desde la tabla likes.
type Comment struct {
	ID            string    `json:"id"`
	ProfileID     string    `json:"profile_id"`
	UserID        string    `json:"user_id"`
	AuthorName    string    `json:"author_name,omitempty"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	MBTIVote      *string   `json:"mbti_vote"`
	EnneagramVote *string   `json:"enneagram_vote"`
	ZodiacVote    *string   `json:"zodiac_vote"`
	LikesCount    int       `json:"likes_count"`
	IsLiked       *bool     `json:"is_liked,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CommentSort define el orden de listado de comentarios.
type CommentSort string

const (
	SortRecent CommentSort = "recent"
	SortBest   CommentSort = "best"
)

// ParseCommentSort interpreta el parámetro de orden; cualquier valor
// distinto de "best" cae al orden por fecha.
func ParseCommentSort(s string) CommentSort {
	if strings.EqualFold(strings.TrimSpace(s), string(SortBest)) {
		return SortBest
	}
	return SortRecent
}

// CommentFilter restringe el listado a comentarios con un voto presente.
type CommentFilter string

const (
	FilterNone      CommentFilter = ""
	FilterMBTI      CommentFilter = "mbti"
	FilterEnneagram CommentFilter = "enneagram"
	FilterZodiac    CommentFilter = "zodiac"
)

// ParseCommentFilter interpreta el filtro sin distinguir mayúsculas;
// valores desconocidos no filtran.
func ParseCommentFilter(s string) CommentFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mbti":
		return FilterMBTI
	case "enneagram":
		return FilterEnneagram
	case "zodiac":
		return FilterZodiac
	default:
		return FilterNone
	}
}
