package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRefreshToken выдаёт непрозрачный refresh-токен для схемы ротации:
// значение хранится в users.refresh_token и при каждом /auth/refresh
// заменяется новым. В токене нет полезной нагрузки — только энтропия.
func NewRefreshToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32
	}
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
