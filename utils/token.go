package utils

import (
	"sync"
	"time"
)

// Logout must invalidate the session token immediately even though the JWT
// itself stays valid until it expires, so revoked tokens are held in an
// in-process blacklist until their own expiry passes.
var (
	blacklistedTokens = make(map[string]time.Time)
	blacklistMutex    sync.RWMutex
)

func BlacklistToken(token string) {
	expiry := time.Now().Add(tokenLifetime)
	if claims, err := ParseToken(token); err == nil && claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()
	blacklistedTokens[token] = expiry
}

func IsTokenBlacklisted(token string) bool {
	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()

	expiry, exists := blacklistedTokens[token]
	if !exists {
		return false
	}
	if time.Now().Before(expiry) {
		return true
	}
	// Expired entries are useless, the token itself is already dead.
	delete(blacklistedTokens, token)
	return false
}
