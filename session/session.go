// Package session holds the farmer's bearer credential and profile for the
// duration of one portal session.
package session

import "farmportal.app/models"

// Session is the single holder of the active credential. It is constructed
// fresh per request from the credential cookie, never shared as a package
// global. Token presence is the sole signal of authenticated state.
type Session struct {
	token   string
	profile *models.FarmerProfile
}

// New returns an unauthenticated session
func New() *Session {
	return &Session{}
}

// FromToken returns a session carrying a previously stored credential whose
// profile has not been resolved yet
func FromToken(token string) *Session {
	return &Session{token: token}
}

// Token returns the current bearer credential, empty when logged out
func (s *Session) Token() string {
	return s.token
}

// Profile returns the farmer profile, nil when not resolved
func (s *Session) Profile() *models.FarmerProfile {
	return s.profile
}

// Authenticated reports whether a credential is currently held
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// Set replaces the held credential and profile wholesale
func (s *Session) Set(token string, profile *models.FarmerProfile) {
	s.token = token
	s.profile = profile
}

// SetProfile attaches a resolved profile to the current credential
func (s *Session) SetProfile(profile *models.FarmerProfile) {
	s.profile = profile
}

// Clear discards the credential and profile unconditionally
func (s *Session) Clear() {
	s.token = ""
	s.profile = nil
}
