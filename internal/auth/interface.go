package auth

import "snipvault/internal/domain/models"

// JWTVerifier defines the interface for JWT token verification.
// The middleware stays agnostic to how tokens are actually checked.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.SupabaseClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}
