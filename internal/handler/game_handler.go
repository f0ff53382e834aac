package handler

import (
	"net/http"
	"strconv"

	"meeplevision/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput defines the structure for adding a game manually.
type GameInput struct {
	Name        string `json:"name" binding:"required" example:"Catan"`
	PlayerCount string `json:"player_count" example:"3-4"`
	PlayTime    string `json:"play_time" example:"90"`
}

// endregion

// SearchGames godoc
// @Summary      Search for a game
// @Description  Substring search against the local store; on a miss the external catalog is consulted and the best match imported.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        query query string true "Game name or fragment"
// @Success      200 {object} GamesResponse
// @Failure      400 {object} ErrorResponse "Query parameter is required"
// @Failure      500 {object} ErrorResponse "Failed to fetch or save game data"
// @Router       /search [get]
func (h *Handler) SearchGames(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	games, err := h.resolver.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch or save game data"})
		return
	}

	c.JSON(http.StatusOK, newGamesResponse(games))
}

// LookupGame godoc
// @Summary      Look up a game by exact name
// @Description  Exact (case-insensitive) name match against the local store only.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        query query string true "Exact game name"
// @Success      200 {object} GamesResponse
// @Failure      400 {object} ErrorResponse "Query parameter is required"
// @Router       /lookup [get]
func (h *Handler) LookupGame(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	games, err := h.resolver.Lookup(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, newGamesResponse(games))
}

// SuggestGames godoc
// @Summary      Suggest games for a table
// @Description  Returns all games whose player count and play time cover the given values.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        numPlayers query int true "Number of players"
// @Param        playTime   query int true "Available play time in minutes"
// @Success      200 {object} GamesResponse
// @Failure      400 {object} ErrorResponse "Missing or non-numeric parameter"
// @Router       /suggest [get]
func (h *Handler) SuggestGames(c *gin.Context) {
	numPlayers, err := strconv.Atoi(c.Query("numPlayers"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "numPlayers must be an integer"})
		return
	}
	playTime, err := strconv.Atoi(c.Query("playTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playTime must be an integer"})
		return
	}

	games, err := h.matcher.Suggest(c.Request.Context(), numPlayers, playTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, newGamesResponse(games))
}

// ListGames godoc
// @Summary      List all games
// @Description  Returns every stored game ordered by name.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} GamesResponse
// @Router       /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	games, err := h.games.ListByName(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, newGamesResponse(games))
}

// CreateGame godoc
// @Summary      Add a game manually
// @Description  Inserts a game without consulting the external catalog.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201 {object} map[string]interface{} "{"message": "Game added successfully", "game": {...}}"
// @Failure      400 {object} ErrorResponse "Game name is required"
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game name is required"})
		return
	}

	if !catalog.ValidField(input.PlayerCount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player_count must be an integer, a lo-hi range, or Unknown"})
		return
	}
	if !catalog.ValidField(input.PlayTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "play_time must be an integer, a lo-hi range, or Unknown"})
		return
	}

	game, err := h.resolver.AddManual(c.Request.Context(), input.Name, input.PlayerCount, input.PlayTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Game added successfully", "game": game})
}
