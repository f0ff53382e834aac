package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"meeplevision/backend/internal/models"
	"meeplevision/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const stateCookie = "oauth_state"

// region --- DTOs ---

// AuthStatusResponse reports whether the caller's token is valid and, if so,
// who they are.
type AuthStatusResponse struct {
	LoggedIn bool         `json:"loggedIn"`
	User     *models.User `json:"user"`
}

// endregion

// GoogleLogin godoc
// @Summary      Start the Google login flow
// @Description  Redirects the browser into the Google consent screen.
// @Tags         auth
// @Success      307
// @Router       /auth/google/login [get]
func (h *Handler) GoogleLogin(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start login"})
		return
	}

	// The state round-trips through a short-lived cookie and is compared on
	// callback.
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthCodeURL(state))
}

// GoogleCallback godoc
// @Summary      Google OAuth callback
// @Description  Exchanges the authorization code, upserts the user and redirects to the frontend with a session token.
// @Tags         auth
// @Success      307
// @Failure      400 {object} ErrorResponse "State mismatch"
// @Failure      502 {object} ErrorResponse "Identity provider error"
// @Router       /auth/google/callback [get]
func (h *Handler) GoogleCallback(c *gin.Context) {
	expectedState, err := c.Cookie(stateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth state mismatch"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	token, err := h.oauth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to exchange authorization code"})
		return
	}

	profile, err := h.fetchGoogleProfile(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch user profile"})
		return
	}

	user, err := h.users.UpsertGoogleUser(c.Request.Context(), profile.ID, profile.Name, profile.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	sessionToken, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/?token="+sessionToken)
}

// AuthStatus godoc
// @Summary      Check login status
// @Description  Reports whether the presented token is valid and returns the user it belongs to.
// @Tags         auth
// @Produce      json
// @Success      200 {object} AuthStatusResponse
// @Router       /auth/status [get]
func (h *Handler) AuthStatus(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusOK, AuthStatusResponse{LoggedIn: false, User: nil})
		return
	}

	user, err := h.users.ByID(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusOK, AuthStatusResponse{LoggedIn: false, User: nil})
		return
	}

	c.JSON(http.StatusOK, AuthStatusResponse{LoggedIn: true, User: user})
}

// Logout godoc
// @Summary      Log out
// @Description  Sessions are stateless tokens; the client discards its copy.
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string "{"message": "Logged out"}"
// @Router       /auth/logout [get]
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// fetchGoogleProfile pulls the subject's profile with the freshly exchanged
// access token.
func (h *Handler) fetchGoogleProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	resp, err := h.oauth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo: unexpected status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("userinfo: response missing subject id")
	}
	return &profile, nil
}

func randomState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
