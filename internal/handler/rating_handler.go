package handler

import (
	"net/http"

	"meeplevision/backend/internal/models"
	"meeplevision/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RatingInput defines the structure for submitting a rating. The rater is the
// authenticated user; the body does not name one.
type RatingInput struct {
	GameID string `json:"game_id" binding:"required" example:"2f0c8f3e-5b1a-4a8e-9c41-1f1f0f6f2a11"`
	Rating int    `json:"rating" binding:"required,min=1,max=10" example:"8"`
}

// GameRatingsResponse wraps the ratings for one game.
type GameRatingsResponse struct {
	Ratings []store.GameRating `json:"ratings"`
}

// MyGamesResponse wraps the authenticated user's rated games.
type MyGamesResponse struct {
	Games []store.RatedGame `json:"games"`
}

// endregion

// SubmitRating godoc
// @Summary      Rate a game
// @Description  Records the authenticated user's rating for a game, overwriting any previous one.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RatingInput true "Rating"
// @Success      200 {object} map[string]interface{} "{"message": "Rating submitted!", "rating": {...}}"
// @Failure      400 {object} ErrorResponse "Missing required fields"
// @Router       /ratings [post]
func (h *Handler) SubmitRating(c *gin.Context) {
	userID := c.GetString("userID")

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_id and a rating between 1 and 10 are required"})
		return
	}

	rating := models.Rating{
		UserID: userID,
		GameID: input.GameID,
		Rating: input.Rating,
	}
	if err := h.ratings.Upsert(c.Request.Context(), &rating); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted!", "rating": rating})
}

// GetMyGames godoc
// @Summary      List the caller's rated games
// @Description  Returns every game the authenticated user has rated, best-rated first.
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MyGamesResponse
// @Router       /ratings/myGames [get]
func (h *Handler) GetMyGames(c *gin.Context) {
	userID := c.GetString("userID")

	games, err := h.ratings.ForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if games == nil {
		games = []store.RatedGame{}
	}

	c.JSON(http.StatusOK, MyGamesResponse{Games: games})
}

// GetGameRatings godoc
// @Summary      List ratings for a game
// @Description  Returns all ratings for a game together with each rater's name.
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path string true "Game ID"
// @Success      200 {object} GameRatingsResponse
// @Router       /ratings/{gameId} [get]
func (h *Handler) GetGameRatings(c *gin.Context) {
	gameID := c.Param("gameId")

	ratings, err := h.ratings.ForGame(c.Request.Context(), gameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if ratings == nil {
		ratings = []store.GameRating{}
	}

	c.JSON(http.StatusOK, GameRatingsResponse{Ratings: ratings})
}
