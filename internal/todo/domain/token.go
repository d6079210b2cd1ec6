package domain

// TokenTypeBearer is the only token kind issued.
const TokenTypeBearer = "bearer"

// Token is the result of a successful login.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
}
