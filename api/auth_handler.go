package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/skincare-storefront/stores/auth"
	"github.com/raushankrgupta/skincare-storefront/utils"
)

// SignupRequest represents the payload for user registration
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler registers the user in the shared directory and signs the session in.
func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Signup API]")
	sf := storefrontFrom(r)

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.AddToLogMessage(&logMessageBuilder, "Missing required fields (Name, Email, Password)")
		utils.RespondError(w, &logMessageBuilder, "Name, Email and Password are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	user, err := sf.Auth.SignUp(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		e := classify(err)
		utils.AddToLogMessage(&logMessageBuilder, e.Error())
		msg := e.Message
		if e.Status >= http.StatusInternalServerError {
			msg = auth.MsgSignUpFailed
		}
		respond(w, sf, e.Status, map[string]any{"success": false, "message": msg, "error": msg})
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User %s registered", user.ID))
	respond(w, sf, http.StatusCreated, map[string]any{
		"success": true,
		"message": auth.MsgSignUpSuccess,
		"user":    user,
	})
}

// SigninHandler signs the session in with email and password.
func (h *Handler) SigninHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Signin API]")
	sf := storefrontFrom(r)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	user, err := sf.Auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		e := classify(err)
		utils.AddToLogMessage(&logMessageBuilder, e.Error())
		msg := e.Message
		if e.Status >= http.StatusInternalServerError {
			msg = auth.MsgSignInFailed
		}
		respond(w, sf, e.Status, map[string]any{"success": false, "message": msg, "error": msg})
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User %s signed in", user.ID))
	respond(w, sf, http.StatusOK, map[string]any{
		"success": true,
		"message": auth.MsgSignInSuccess,
		"user":    user,
	})
}

// SignoutHandler clears the session user.
func (h *Handler) SignoutHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Auth.SignOut(ctx)
	respond(w, sf, http.StatusOK, map[string]any{"success": true})
}

// MeHandler reports whether the session is signed in and as whom.
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	user, ok := sf.Auth.CurrentUser()
	if !ok {
		respond(w, sf, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	respond(w, sf, http.StatusOK, map[string]any{"authenticated": true, "user": user})
}
