package domain

import "time"

// FavoriteCategory pins a subcategory to a user's quick-access list.
// A user can hold at most MaxFavoriteCategories of them.
type FavoriteCategory struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CategoryID    int       `json:"category_id"`
	SubcategoryID int       `json:"subcategory_id"`
	CreatedAt     time.Time `json:"created_at"`
}

const MaxFavoriteCategories = 10
