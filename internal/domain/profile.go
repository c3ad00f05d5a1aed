package domain

import "time"

// DefaultProfileImage se usa cuando el perfil no trae imagen propia.
const DefaultProfileImage = "https://soulverse.boo.world/images/1.png"

// Profile representa una figura pública anotada con atributos de
// tipología de personalidad.
type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MBTI         string    `json:"mbti"`
	Enneagram    string    `json:"enneagram"`
	Variant      string    `json:"variant"`
	Tritype      *int      `json:"tritype"`
	Socionics    string    `json:"socionics"`
	Sloan        string    `json:"sloan"`
	Psyche       string    `json:"psyche"`
	Temperaments string    `json:"temperaments"`
	ProfileTags  []string  `json:"profile_tags"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
