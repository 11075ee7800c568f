// Package auth owns the session lifecycle: credential checks, token
// issuance, verification, refresh and revocation.
package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/beetsolutions/veteran-app/apperr"
	"github.com/beetsolutions/veteran-app/models"
	"github.com/beetsolutions/veteran-app/store"
	"github.com/beetsolutions/veteran-app/utils"
)

// ForgotPasswordMessage is returned whether or not the email matches a
// user, so callers cannot enumerate accounts.
const ForgotPasswordMessage = "If an account exists with this email, a password reset link has been sent"

const invalidLoginMessage = "Invalid username or password"

// UserClaims is what a verified access token asserts about its bearer.
type UserClaims struct {
	UserID   string
	Username string
	Email    string
}

// LoginResult carries everything the login response needs.
type LoginResult struct {
	User                  models.User
	Organizations         []models.Organization
	CurrentOrganizationID string
	AccessToken           string
	RefreshToken          string
}

// SessionManager issues and verifies tokens against a fixed user
// directory. The issued set tracks refresh tokens that are still
// honored; a refresh token not in the set is rejected before its
// signature is even checked.
type SessionManager struct {
	store  *store.DataStore
	secret []byte

	mu     sync.Mutex
	issued map[string]time.Time // refresh token -> expiry
}

func NewSessionManager(ds *store.DataStore, secret []byte) *SessionManager {
	return &SessionManager{
		store:  ds,
		secret: secret,
		issued: make(map[string]time.Time),
	}
}

// Login authenticates by exact username or email match. Both failure
// cases return the same message so the response does not leak which
// check failed.
func (sm *SessionManager) Login(usernameOrEmail, password string) (*LoginResult, error) {
	user, ok := sm.store.FindUserByLogin(usernameOrEmail)
	if !ok {
		return nil, apperr.InvalidCredentials(invalidLoginMessage)
	}
	if !utils.ComparePasswords(user.Password, password) {
		return nil, apperr.InvalidCredentials(invalidLoginMessage)
	}

	accessToken, err := utils.GenerateAccessToken(sm.secret, user)
	if err != nil {
		return nil, apperr.Internal("Failed to generate token")
	}
	refreshToken, err := utils.GenerateRefreshToken(sm.secret, user)
	if err != nil {
		return nil, apperr.Internal("Failed to generate token")
	}

	sm.mu.Lock()
	sm.issued[refreshToken] = time.Now().Add(utils.RefreshTokenTTL)
	sm.mu.Unlock()

	organizations := sm.store.OrganizationsByIDs(user.OrganizationIDs)
	currentOrganizationID := ""
	if len(user.OrganizationIDs) > 0 {
		currentOrganizationID = user.OrganizationIDs[0]
	}

	return &LoginResult{
		User:                  user,
		Organizations:         organizations,
		CurrentOrganizationID: currentOrganizationID,
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
	}, nil
}

// VerifyAccess checks an access token's signature and expiry.
func (sm *SessionManager) VerifyAccess(token string) (UserClaims, error) {
	claims, err := utils.VerifyToken(token, sm.secret, utils.TokenTypeAccess)
	if err != nil {
		return UserClaims{}, apperr.Unauthorized("Invalid token")
	}
	userID, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return UserClaims{}, apperr.Unauthorized("Invalid token")
	}
	return UserClaims{UserID: userID, Username: username, Email: email}, nil
}

// Refresh exchanges a valid, still-issued refresh token for a new
// access token. The refresh token itself is not rotated.
func (sm *SessionManager) Refresh(refreshToken string) (string, error) {
	sm.mu.Lock()
	_, issued := sm.issued[refreshToken]
	sm.mu.Unlock()
	if !issued {
		return "", apperr.Unauthorized("Invalid refresh token")
	}

	claims, err := utils.VerifyToken(refreshToken, sm.secret, utils.TokenTypeRefresh)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Expired tokens can never be honored again; drop them.
			sm.mu.Lock()
			delete(sm.issued, refreshToken)
			sm.mu.Unlock()
		}
		return "", apperr.Unauthorized("Invalid refresh token")
	}

	userID, _ := claims["user_id"].(string)
	user, ok := sm.store.FindUserByID(userID)
	if !ok {
		return "", apperr.Unauthorized("Invalid refresh token")
	}

	accessToken, err := utils.GenerateAccessToken(sm.secret, user)
	if err != nil {
		return "", apperr.Internal("Failed to generate token")
	}
	return accessToken, nil
}

// Logout revokes a refresh token. Unknown tokens are a no-op, so the
// operation is idempotent.
func (sm *SessionManager) Logout(refreshToken string) {
	sm.mu.Lock()
	delete(sm.issued, refreshToken)
	sm.mu.Unlock()
}

// SwitchOrganization validates that the user may act in the given
// organization. Membership is checked before directory existence, so a
// user probing ids they do not belong to always sees Forbidden.
func (sm *SessionManager) SwitchOrganization(userID, organizationID string) (models.Organization, error) {
	user, ok := sm.store.FindUserByID(userID)
	if !ok {
		return models.Organization{}, apperr.Unauthorized("Invalid token")
	}
	if !user.BelongsTo(organizationID) {
		return models.Organization{}, apperr.Forbidden("You are not a member of this organization")
	}
	org, ok := sm.store.OrganizationByID(organizationID)
	if !ok {
		return models.Organization{}, apperr.NotFound("Organization not found")
	}
	return org, nil
}

// ForgotPassword acknowledges the request with the same message whether
// or not the email matches a user. A real mailer would hang off the
// matched branch.
func (sm *SessionManager) ForgotPassword(email string) string {
	if _, ok := sm.store.FindUserByEmail(email); ok {
		// Reset emails are not sent in demo mode.
		return ForgotPasswordMessage
	}
	return ForgotPasswordMessage
}
