package controllers

import (
	"net/http"

	"github.com/jobify-dev/jobs-api/middleware"
	"github.com/jobify-dev/jobs-api/models"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/jobify-dev/jobs-api/token"
	"github.com/jobify-dev/jobs-api/utils"
)

const (
	msgInvalidCredentials = "Invalid Credentials"
	msgProvideCredentials = "Please provide email and password"
	msgProvideAllValues   = "Please provide all values"
)

// writeAuthResponse issues a fresh token for u and writes the profile.
func writeAuthResponse(w http.ResponseWriter, tokens *token.Service, u *models.User, status int) {
	signed, err := tokens.Issue(u)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, status, models.AuthResponse{User: u.Profile(signed)})
}

// RegisterHandler handles user registration.
func RegisterHandler(users repository.UserRepository, tokens *token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.RegisterInput
		if err := utils.DecodeJSON(r, &in); err != nil {
			utils.WriteError(w, err)
			return
		}
		if err := utils.Validate(in); err != nil {
			utils.WriteError(w, err)
			return
		}

		user := &models.User{
			Email:    in.Email,
			Name:     in.Name,
			LastName: in.LastName,
			Location: in.Location,
		}
		// Hashing happens in the repository
		if err := users.CreateUser(r.Context(), user, in.Password); err != nil {
			utils.WriteError(w, err)
			return
		}

		writeAuthResponse(w, tokens, user, http.StatusCreated)
	}
}

// LoginHandler checks credentials and issues a session token.
func LoginHandler(users repository.UserRepository, tokens *token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := utils.DecodeJSON(r, &creds); err != nil {
			utils.WriteError(w, err)
			return
		}
		if creds.Email == "" || creds.Password == "" {
			utils.WriteError(w, utils.BadRequest(msgProvideCredentials))
			return
		}

		user, err := users.GetUserByEmail(r.Context(), creds.Email)
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		// Unknown email and wrong password must be indistinguishable
		if user == nil || !repository.CheckPasswordHash(creds.Password, user.PasswordHash) {
			utils.WriteError(w, utils.Unauthenticated(msgInvalidCredentials))
			return
		}

		writeAuthResponse(w, tokens, user, http.StatusOK)
	}
}

// UpdateUserHandler overwrites the caller's own profile and re-issues a token.
func UpdateUserHandler(users repository.UserRepository, tokens *token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			utils.WriteError(w, utils.Unauthenticated(utils.MsgAuthInvalid))
			return
		}

		var in models.UpdateUserInput
		if err := utils.DecodeJSON(r, &in); err != nil {
			utils.WriteError(w, err)
			return
		}
		if in.Email == "" || in.Name == "" || in.LastName == "" || in.Location == "" {
			utils.WriteError(w, utils.BadRequest(msgProvideAllValues))
			return
		}
		if err := utils.Validate(in); err != nil {
			utils.WriteError(w, err)
			return
		}

		user, err := users.GetUserByID(r.Context(), identity.UserID)
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		if user == nil {
			utils.WriteError(w, utils.Unauthenticated(utils.MsgAuthInvalid))
			return
		}

		user.Email = in.Email
		user.Name = in.Name
		user.LastName = in.LastName
		user.Location = in.Location
		if err := users.UpdateUser(r.Context(), user); err != nil {
			utils.WriteError(w, err)
			return
		}

		writeAuthResponse(w, tokens, user, http.StatusOK)
	}
}
