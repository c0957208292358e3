// Package auth содержит бизнес-логику регистрации, входа и обновления
// сессионных токенов.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/lib/jwt"
	"github.com/magabrotheeeer/contact-hub/internal/lib/password"
	"github.com/magabrotheeeer/contact-hub/internal/lib/sl"
	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// FindUserByUsername возвращает пользователя по имени
	// или apperr.ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Session — результат успешной аутентификации: токен и его владелец.
type Session struct {
	Token     string           `json:"token"`
	Principal models.Principal `json:"principal"`
}

// Service отвечает за регистрацию, вход и проверку токенов.
type Service struct {
	users UserRepository
	maker jwt.Maker
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, maker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users: users,
		maker: maker,
		log:   log,
	}
}

// Register создает нового пользователя с хэшированием пароля и ролью
// user. Роль не принимается из запроса: эскалация через публичный API
// невозможна. Конфликт username или email возвращается как
// apperr.ErrDuplicate без уточнения колонки.
func (s *Service) Register(ctx context.Context, username, email, rawPassword string) (*Session, error) {
	const op = "auth.Register"

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleUser,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("registered new user", slog.String("username", username))

	return s.issueSession(uid, username, models.RoleUser)
}

// Login проверяет пароль пользователя и выпускает токен.
//
// Неизвестное имя и неверный пароль приводят к одной и той же ошибке
// apperr.ErrInvalidCredentials, чтобы ответ не позволял перебирать
// зарегистрированные имена.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (*Session, error) {
	const op = "auth.Login"

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
	}

	s.log.Info("user logged in", slog.String("username", username))

	return s.issueSession(user.UID, user.Username, user.Role)
}

// Refresh выпускает новый токен по ещё действующему старому.
//
// Политика без льготного окна: просроченный токен не обновляется,
// клиент обязан войти заново. Пароль не требуется.
func (s *Service) Refresh(_ context.Context, tokenStr string) (*Session, error) {
	const op = "auth.Refresh"

	claims, err := s.maker.Verify(tokenStr)
	if err != nil {
		s.log.Warn("refresh rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrUnauthenticated)
	}
	return s.issueSession(claims.UserUID, claims.Username, claims.Role)
}

// Authenticate проверяет токен и возвращает субъект запроса.
// Причина отказа не различается для вызывающего кода.
func (s *Service) Authenticate(_ context.Context, tokenStr string) (models.Principal, error) {
	const op = "auth.Authenticate"

	claims, err := s.maker.Verify(tokenStr)
	if err != nil {
		s.log.Debug("token rejected", sl.Err(err))
		return models.Principal{}, fmt.Errorf("%s: %w", op, apperr.ErrUnauthenticated)
	}
	return models.Principal{
		UID:      claims.UserUID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// TokenTTL возвращает время жизни выпускаемых токенов
// (используется HTTP-слоем для MaxAge сессионной куки).
func (s *Service) TokenTTL() int {
	return int(s.maker.TTL().Seconds())
}

func (s *Service) issueSession(uid, username, role string) (*Session, error) {
	const op = "auth.issueSession"

	token, err := s.maker.Issue(uid, username, role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Session{
		Token: token,
		Principal: models.Principal{
			UID:      uid,
			Username: username,
			Role:     role,
		},
	}, nil
}
