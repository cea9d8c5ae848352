package models

import "time"

// Recipe is the published-recipe record returned by search and browse
// queries. Nested Author and Category carry the subset of fields the list
// and detail screens render.
type Recipe struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	PrepTime         int       `json:"prep_time"`
	CookTime         int       `json:"cook_time"`
	Servings         int       `json:"servings,omitempty"`
	Difficulty       string    `json:"difficulty"`
	FeaturedImageURL string    `json:"featured_image_url,omitempty"`
	IsPremium        bool      `json:"is_premium"`
	Price            float64   `json:"price,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	AverageRating    float64   `json:"average_rating"`
	TotalLikes       int       `json:"total_likes"`
	TotalComments    int       `json:"total_comments"`
	Author           Author    `json:"user"`
	Category         Category  `json:"category"`
}

// Author is the recipe-owner subset of [User] embedded in query results.
type Author struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Category classifies recipes. Slug is the URL-safe identifier used in
// share links.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
