package domain

// Item represents a reward item in the gacha catalog.
// Rarity doubles as the selection weight: probability of a pull landing on an
// item is Rarity / sum(Rarity) over the current catalog.
type Item struct {
	ID          int     `json:"item_id" db:"item_id"`
	Name        string  `json:"name" db:"name"`
	Rarity      int     `json:"rarity" db:"rarity"`
	Description string  `json:"description,omitempty" db:"description"`
	ImageURL    *string `json:"image_url,omitempty" db:"image_url"`
	Color1      *string `json:"color1,omitempty" db:"color1"`
	Color2      *string `json:"color2,omitempty" db:"color2"`
}
