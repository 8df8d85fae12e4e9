package auth_test

import (
	"context"
	"testing"

	"github.com/HikaruIzuno/dailyreport-system/internal/auth"
	autherrors "github.com/HikaruIzuno/dailyreport-system/internal/auth/errors"
	"github.com/HikaruIzuno/dailyreport-system/internal/domain"
	"github.com/HikaruIzuno/dailyreport-system/internal/employee"
	employeeerrors "github.com/HikaruIzuno/dailyreport-system/internal/employee/errors"
	"github.com/HikaruIzuno/dailyreport-system/internal/shared/password"

	employeeMock "github.com/HikaruIzuno/dailyreport-system/internal/employee/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupAuthTest(t *testing.T) (auth.Service, *employeeMock.MockRepository) {
	t.Setenv("JWT_SECRET", testSecret)

	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)

	return auth.NewService(repo), repo
}

func activeEmployee(t *testing.T, raw string) *employee.Employee {
	t.Helper()
	hashed, err := password.Hash(raw)
	assert.NoError(t, err)
	return &employee.Employee{
		Code:     "EMP001",
		Name:     "Tanaka Taro",
		Password: hashed,
		Role:     domain.RoleGeneral,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns tokens with employee claims", func(t *testing.T) {
		svc, repo := setupAuthTest(t)

		repo.EXPECT().
			FindByCode(ctx, "EMP001").
			Return(activeEmployee(t, "password123"), nil)

		accessToken, refreshToken, resp, err := svc.Login(ctx, "EMP001", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, "EMP001", resp.Code)
		assert.Equal(t, "GENERAL", resp.Role)

		parsed, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "EMP001", claims["employee_code"])
		assert.Equal(t, "GENERAL", claims["role"])
	})

	t.Run("wrong password -> invalid credentials", func(t *testing.T) {
		svc, repo := setupAuthTest(t)

		repo.EXPECT().
			FindByCode(ctx, "EMP001").
			Return(activeEmployee(t, "password123"), nil)

		_, _, _, err := svc.Login(ctx, "EMP001", "wrongpass99")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown code -> same invalid credentials error", func(t *testing.T) {
		svc, repo := setupAuthTest(t)

		repo.EXPECT().
			FindByCode(ctx, "GHOST").
			Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := svc.Login(ctx, "GHOST", "whatever123")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("soft-deleted employee cannot log in", func(t *testing.T) {
		svc, repo := setupAuthTest(t)

		empl := activeEmployee(t, "password123")
		empl.DeleteFlag = true

		repo.EXPECT().FindByCode(ctx, "EMP001").Return(empl, nil)

		_, _, _, err := svc.Login(ctx, "EMP001", "password123")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		svc, repo := setupAuthTest(t)

		empl := activeEmployee(t, "password123")
		repo.EXPECT().FindByCode(ctx, "EMP001").Return(empl, nil).Times(2)

		_, refreshToken, _, err := svc.Login(ctx, "EMP001", "password123")
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, "EMP001", resp.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		svc, _ := setupAuthTest(t)

		_, _, _, err := svc.RefreshToken(ctx, "not.a.token")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("deleted employee cannot refresh", func(t *testing.T) {
		svc, repo := setupAuthTest(t)

		empl := activeEmployee(t, "password123")
		repo.EXPECT().FindByCode(ctx, "EMP001").Return(empl, nil)

		_, refreshToken, _, err := svc.Login(ctx, "EMP001", "password123")
		assert.NoError(t, err)

		deleted := activeEmployee(t, "password123")
		deleted.DeleteFlag = true
		repo.EXPECT().FindByCode(ctx, "EMP001").Return(deleted, nil)

		_, _, _, err = svc.RefreshToken(ctx, refreshToken)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("returns profile without the password hash", func(t *testing.T) {
		svc, repo := setupAuthTest(t)

		repo.EXPECT().
			FindByCode(ctx, "EMP001").
			Return(activeEmployee(t, "password123"), nil)

		resp, err := svc.GetMe(ctx, "EMP001")

		assert.NoError(t, err)
		assert.Equal(t, "EMP001", resp.Code)
		assert.Equal(t, "Tanaka Taro", resp.Name)
	})

	t.Run("deleted employee -> not found", func(t *testing.T) {
		svc, repo := setupAuthTest(t)

		empl := activeEmployee(t, "password123")
		empl.DeleteFlag = true

		repo.EXPECT().FindByCode(ctx, "EMP001").Return(empl, nil)

		_, err := svc.GetMe(ctx, "EMP001")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
