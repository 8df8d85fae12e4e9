package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/HikaruIzuno/dailyreport-system/internal/auth/errors"
	"github.com/HikaruIzuno/dailyreport-system/internal/employee"
	employeeerrors "github.com/HikaruIzuno/dailyreport-system/internal/employee/errors"
	"github.com/HikaruIzuno/dailyreport-system/internal/shared/password"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, code, rawPassword string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, code string) (*AuthResponse, error)
}

type service struct {
	employees employee.Repository
}

func NewService(employees employee.Repository) Service {
	return &service{employees: employees}
}

func (s *service) Login(ctx context.Context, code, rawPassword string) (string, string, AuthResponse, error) {
	empl, err := s.employees.FindByCode(ctx, code)
	if err != nil {
		// Unknown code and wrong password are indistinguishable on purpose.
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// A soft-deleted employee can no longer log in.
	if empl.DeleteFlag {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !password.Verify(empl.Password, rawPassword) {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(empl.Code, string(empl.Role), 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(empl.Code, string(empl.Role), 24*time.Hour*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, AuthResponse{
		Code: empl.Code,
		Name: empl.Name,
		Role: string(empl.Role),
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	code, ok := claims["employee_code"].(string)
	if !ok || code == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	empl, err := s.employees.FindByCode(ctx, code)
	if err != nil || empl.DeleteFlag {
		return "", "", AuthResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	newAccessToken, err := s.generateToken(empl.Code, string(empl.Role), 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	newRefreshToken, err := s.generateToken(empl.Code, string(empl.Role), 24*time.Hour*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		Code: empl.Code,
		Name: empl.Name,
		Role: string(empl.Role),
	}, nil
}

func (s *service) GetMe(ctx context.Context, code string) (*AuthResponse, error) {
	empl, err := s.employees.FindByCode(ctx, code)
	if err != nil || empl.DeleteFlag {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	return &AuthResponse{
		Code: empl.Code,
		Name: empl.Name,
		Role: string(empl.Role),
	}, nil
}

func (s *service) generateToken(code, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_code": code,
		"role":          role,
		"exp":           time.Now().Add(ttl).Unix(),
		"iat":           time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
