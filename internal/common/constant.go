// Package common contains shared constants and sentinel errors used across
// user service components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"
