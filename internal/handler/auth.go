package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/laqshya/sports-facility-booking/internal/config"
	"github.com/laqshya/sports-facility-booking/internal/model"
	"github.com/laqshya/sports-facility-booking/internal/repository"
	"github.com/laqshya/sports-facility-booking/internal/utils"
)

// AuthHandler bundles the dependencies of the auth endpoints.  Login is
// a plain credential match against the fixed account list; a successful
// login issues an access token and writes the session to the key-value
// store so it survives a restart.
type AuthHandler struct {
	Cfg      config.Config
	Identity *repository.IdentityRepo
	Sessions *repository.SessionRepo
}

func NewAuthHandler(cfg config.Config, identity *repository.IdentityRepo, sessions *repository.SessionRepo) *AuthHandler {
	if identity == nil || sessions == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Identity: identity, Sessions: sessions}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string        `json:"access_token"`
	Expires     time.Time     `json:"expires"`
	User        model.Account `json:"user"`
}

// Login handles POST /v1/auth/login.  Failed attempts get a bare 401;
// there is no lockout and no attempt counting.
func (h *AuthHandler) Login(c echo.Context) error {
	var body loginReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	acc, err := h.Identity.Authenticate(body.Email, body.Password)
	if err != nil {
		return fail(c, err)
	}
	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.ID, acc.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token signing failed"})
	}
	if err := h.Sessions.Store(c.Request().Context(), acc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session store failed"})
	}
	return c.JSON(http.StatusOK, loginResp{AccessToken: tok.Token, Expires: tok.Exp, User: acc})
}

// Logout handles POST /v1/auth/logout.  It clears the stored session;
// the access token simply ages out.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Sessions.Clear(c.Request().Context(), userID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session clear failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /v1/me.  The account comes from the session store; a
// valid token without a session means the user logged out elsewhere.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	acc, ok, err := h.Sessions.Current(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session read failed"})
	}
	if !ok {
		// Session gone; fall back to the identity store so a still
		// valid token keeps working.
		acc, err = h.Identity.GetByID(userID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no active session"})
		}
	}
	return c.JSON(http.StatusOK, acc)
}

type profileImageReq struct {
	Image string `json:"image"` // data URI
}

// PutProfileImage handles PUT /v1/me/profile-image, storing a data-URI
// blob keyed by the account id.
func (h *AuthHandler) PutProfileImage(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body profileImageReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Sessions.StoreProfileImage(c.Request().Context(), userID, body.Image); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetProfileImage handles GET /v1/me/profile-image.  Absence of a
// stored blob returns the placeholder path instead of an error.
func (h *AuthHandler) GetProfileImage(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	img, ok, err := h.Sessions.ProfileImage(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "image read failed"})
	}
	if !ok {
		img = "/placeholder-user.jpg"
	}
	return c.JSON(http.StatusOK, echo.Map{"image": img})
}
