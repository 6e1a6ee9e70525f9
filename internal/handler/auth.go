package handler

import (
	"net/http"
	"time"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/middleware"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/service"
)

// AuthHandler handles both identity domains: admin sessions on the
// auth_token cookie and member sessions on user_token.
type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge time.Duration
	cookieSecure bool
}

// AuthHandlerConfig holds configuration for the auth handler
type AuthHandlerConfig struct {
	AuthService  *service.AuthService
	CookieMaxAge time.Duration
	CookieSecure bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	maxAge := cfg.CookieMaxAge
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &AuthHandler{
		authService:  cfg.AuthService,
		cookieMaxAge: maxAge,
		cookieSecure: cfg.CookieSecure,
	}
}

// AdminResponse represents an admin account in API responses
type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MemberResponse represents a member account in API responses. The rank is
// expanded to its display name and emoji.
type MemberResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Rank         int    `json:"rank"`
	RankName     string `json:"rank_name"`
	RankEmoji    string `json:"rank_emoji"`
	Avatar       string `json:"avatar,omitempty"`
	Bio          string `json:"bio,omitempty"`
	TopicsCount  int    `json:"topics_count"`
	RepliesCount int    `json:"replies_count"`
}

// AdminLogin handles POST /api/auth/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "email", Message: "email and password are required"},
		}))
		return
	}

	admin, tok, err := h.authService.LoginAdmin(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	h.setCookie(w, middleware.AdminCookieName, tok)

	WriteJSON(w, http.StatusOK, struct {
		Message string        `json:"message"`
		Admin   AdminResponse `json:"admin"`
	}{
		Message: "Login successful",
		Admin:   toAdminResponse(admin),
	})
}

// AdminLogout handles POST /api/auth/logout
func (h *AuthHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, middleware.AdminCookieName)
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}

// AdminMe handles GET /api/auth/me
func (h *AuthHandler) AdminMe(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.GetUserID(r.Context())

	admin, err := h.authService.GetAdmin(r.Context(), adminID)
	if err != nil {
		WriteError(w, model.NewUnauthorizedError("not authenticated"))
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		Admin AdminResponse `json:"admin"`
	}{Admin: toAdminResponse(admin)})
}

// Register handles POST /api/user/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, tok, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	h.setCookie(w, middleware.MemberCookieName, tok)

	WriteJSON(w, http.StatusCreated, struct {
		User MemberResponse `json:"user"`
	}{User: toMemberResponse(user)})
}

// MemberLogin handles POST /api/user/login
func (h *AuthHandler) MemberLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "email", Message: "email and password are required"},
		}))
		return
	}

	user, tok, err := h.authService.LoginMember(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	h.setCookie(w, middleware.MemberCookieName, tok)

	WriteJSON(w, http.StatusOK, struct {
		Message string         `json:"message"`
		User    MemberResponse `json:"user"`
	}{
		Message: "Login successful",
		User:    toMemberResponse(user),
	})
}

// MemberLogout handles POST /api/user/logout
func (h *AuthHandler) MemberLogout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, middleware.MemberCookieName)
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}

// MemberMe handles GET /api/user/me
func (h *AuthHandler) MemberMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.GetMember(r.Context(), userID)
	if err != nil {
		WriteError(w, model.NewUnauthorizedError("not authenticated"))
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		User MemberResponse `json:"user"`
	}{User: toMemberResponse(user)})
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func toAdminResponse(admin *model.Admin) AdminResponse {
	return AdminResponse{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	}
}

func toMemberResponse(user *model.User) MemberResponse {
	rank := model.RankForLevel(user.Rank)
	return MemberResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Rank:         user.Rank,
		RankName:     rank.Name,
		RankEmoji:    rank.Emoji,
		Avatar:       user.Avatar,
		Bio:          user.Bio,
		TopicsCount:  user.TopicsCount,
		RepliesCount: user.RepliesCount,
	}
}
