package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used to authenticate RPC clients.
//
// SignedString holds the compact serialized form ready to be placed in the
// Authorization header. Client is the parsed "sub" claim and names the
// calling client for logs and metrics.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	Client string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
