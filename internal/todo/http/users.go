package http

import (
	"net/http"

	"github.com/aussiebroadwan/tabtodo/internal/todo/service"
	"github.com/aussiebroadwan/tabtodo/pkg/httpx"
	"github.com/aussiebroadwan/tabtodo/pkg/todosdk"
)

// UserHandler serves registration, login and identity endpoints.
type UserHandler struct {
	API *service.API
}

// HandleRegister handles POST /v1/users
//
//	@Summary		Register User
//	@Description	Creates a new user account. Usernames are unique.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.RegisterRequest	true	"username and password"
//	@Success		201		{object}	todosdk.UserResponse
//	@Failure		400		{object}	todosdk.APIError	"error, error_description"
//	@Failure		409		{object}	todosdk.APIError	"error, error_description"
//	@Failure		503		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/users [post].
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req todosdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	user, err := h.API.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userView(user))
}

// HandleToken handles POST /v1/token
//
//	@Summary		Login
//	@Description	Exchanges a username and password for a bearer access token.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.LoginRequest	true	"username and password"
//	@Success		200		{object}	todosdk.TokenResponse
//	@Failure		400		{object}	todosdk.APIError	"error, error_description"
//	@Failure		401		{object}	todosdk.APIError	"error, error_description"
//	@Failure		503		{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/token [post].
func (h *UserHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req todosdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	tok, err := h.API.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   tok.ExpiresIn,
	})
}

// HandleWhoAmI handles GET /v1/users/me
//
//	@Summary		Current User
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	todosdk.UserResponse
//	@Failure		401	{object}	todosdk.APIError	"error, error_description"
//	@Router			/v1/users/me [get].
func (h *UserHandler) HandleWhoAmI(w http.ResponseWriter, r *http.Request) {
	user, err := h.API.WhoAmI(r.Context(), bearer(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userView(user))
}
