// dto/leaderboard_dto.go
package dto

import "github.com/google/uuid"

// LeaderboardEntry is derived on every read, never persisted.
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserUsername string    `json:"user_username"`
	BestScore    int       `json:"best_score"`
	SchoolName   *string   `json:"school_name,omitempty"`
	CityName     *string   `json:"city_name,omitempty"`
}

// UserRankResponse: both fields null means unranked, which is not an error.
type UserRankResponse struct {
	Rank      *int `json:"rank"`
	BestScore *int `json:"best_score"`
}
