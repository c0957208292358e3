// Package jwt реализует генерацию и проверку JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для выпуска и разбора токенов с user_uid,
// username и role. MakerImpl — конкретная реализация на HMAC-SHA256
// с секретным ключом и сроком жизни токена.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
)

// Maker описывает интерфейс для выпуска и проверки JWT токенов.
type Maker interface {
	// Issue создает подписанный токен для пользователя.
	Issue(userUID, username, role string) (string, error)
	// Verify проверяет подпись и срок действия, возвращает claims.
	Verify(tokenStr string) (*CustomClaims, error)
	// TTL возвращает настроенное время жизни токена.
	TTL() time.Duration
}

// MakerImpl реализует Maker с использованием секретного ключа
// и времени жизни токена.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
// TTL обязан быть положительным, иначе expiresAt оказался бы раньше issuedAt.
func NewMaker(secretKey string, ttl time.Duration) (*MakerImpl, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("jwt.NewMaker: empty secret key")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt.NewMaker: non-positive ttl %s", ttl)
	}
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}, nil
}

// TTL возвращает время жизни выпускаемых токенов.
func (j *MakerImpl) TTL() time.Duration {
	return j.tokenTTL
}

// Issue создает JWT токен с заданными user_uid, username и role,
// подписывая его секретным ключом. Время жизни определяется tokenTTL.
func (j *MakerImpl) Issue(userUID, username, role string) (string, error) {
	const op = "jwt.Issue"
	now := time.Now()
	claims := CustomClaims{
		UserUID:  userUID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Verify парсит JWT токен, проверяет подпись и срок действия.
//
// Подпись пересчитывается при каждом вызове, результат проверки нигде
// не кешируется. Ошибки классифицируются в apperr.ErrTokenExpired,
// apperr.ErrTokenSignature и apperr.ErrTokenMalformed; наружу из
// HTTP-слоя эта классификация не раскрывается.
func (j *MakerImpl) Verify(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.Verify"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrTokenSignature)
		default:
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrTokenMalformed)
		}
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrTokenMalformed)
	}
	return claims, nil
}
