package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
)

// GameHandler handles HTTP requests for game scores and leaderboards
type GameHandler struct {
	gameUseCase domain.GameUseCase
	logger      *logger.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase, logger *logger.Logger) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
		logger:      logger,
	}
}

// SubmitScoreRequest represents a game result
type SubmitScoreRequest struct {
	GameName    string `json:"game_name" binding:"required,max=64" example:"tapcoin"`
	Score       *int   `json:"score" binding:"required,min=-2147483648,max=2147483647" example:"120"`
	CoinsEarned *int   `json:"coins_earned" binding:"omitempty,min=-2147483648,max=2147483647" example:"12"`
}

// LeaderboardQuery carries the leaderboard size
type LeaderboardQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=1000" example:"10"`
}

// SubmitScore handles score submission
// @Summary Submit a game score
// @Description Stores the score and rewards coins_earned coins and score xp
// @Tags games
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body SubmitScoreRequest true "Game result"
// @Success 201 {object} domain.GameScore
// @Failure 404 {object} domain.ErrorResponse
// @Failure 422 {object} domain.ErrorResponse
// @Router /api/games/{user_id}/scores [post]
func (h *GameHandler) SubmitScore(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	input := domain.SubmitScoreInput{GameName: req.GameName, Score: *req.Score}
	if req.CoinsEarned != nil {
		input.CoinsEarned = *req.CoinsEarned
	}

	score, err := h.gameUseCase.SubmitScore(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, score)
}

// ListScores handles listing a user's scores
// @Summary List game scores
// @Tags games
// @Produce json
// @Param user_id path int true "User ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} domain.GameScore
// @Router /api/games/{user_id}/scores [get]
func (h *GameHandler) ListScores(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	scores, err := h.gameUseCase.ListScores(c.Request.Context(), userID, page.Skip, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(scores))
}

// HighScore handles a user's best score in one game
// @Summary Get high score
// @Description Returns high_score 0 with a message when the user never played the game
// @Tags games
// @Produce json
// @Param user_id path int true "User ID"
// @Param game_name path string true "Game name"
// @Success 200 {object} domain.HighScore
// @Router /api/games/{user_id}/scores/{game_name} [get]
func (h *GameHandler) HighScore(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	hs, err := h.gameUseCase.HighScore(c.Request.Context(), userID, c.Param("game_name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hs)
}

// Leaderboard handles the ranked top scores of a game
// @Summary Game leaderboard
// @Tags games
// @Produce json
// @Param game_name path string true "Game name"
// @Param limit query int false "Entries" default(10)
// @Success 200 {array} domain.LeaderboardEntry
// @Router /api/games/leaderboard/{game_name} [get]
func (h *GameHandler) Leaderboard(c *gin.Context) {
	query := LeaderboardQuery{Limit: domain.DefaultLeaderboardLimit}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, bindingError(err))
		return
	}

	entries, err := h.gameUseCase.Leaderboard(c.Request.Context(), c.Param("game_name"), query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(entries))
}
