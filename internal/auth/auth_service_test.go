package auth

import (
	"context"
	"testing"

	autherrors "github.com/KapilArunesshSS/brighttechrms/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, user *User) error
	getByEmailFn func(ctx context.Context, email string) (*User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*User, error)
}

func (f *fakeRepo) Create(ctx context.Context, user *User) error { return f.createFn(ctx, user) }
func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}

func hashedUser(t *testing.T, password string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &User{
		ID:       uuid.New(),
		Email:    "hr@example.com",
		Name:     "HR Admin",
		Password: string(hashed),
		Role:     "hr",
		IsActive: true,
	}
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := hashedUser(t, "s3cret")
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			assert.Equal(t, user.Email, email)
			return user, nil
		},
	}

	svc := NewService(repo)

	access, refresh, resp, err := svc.Login(context.Background(), user.Email, "s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "HR", resp.Role)
	assert.Equal(t, user.Email, resp.Email)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := hashedUser(t, "s3cret")
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) { return user, nil },
	}

	svc := NewService(repo)

	_, _, _, err := svc.Login(context.Background(), user.Email, "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	assert.Equal(t, "The entered Email or password is incorrect.", autherrors.ErrInvalidCredentials.Message)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo)

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_InactiveUser(t *testing.T) {
	user := hashedUser(t, "s3cret")
	user.IsActive = false
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) { return user, nil },
	}

	svc := NewService(repo)

	_, _, _, err := svc.Login(context.Background(), user.Email, "s3cret")
	assert.ErrorIs(t, err, autherrors.ErrUserInactive)
}

func TestService_RefreshToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := hashedUser(t, "s3cret")
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) { return user, nil },
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}

	svc := NewService(repo)

	_, refresh, _, err := svc.Login(context.Background(), user.Email, "s3cret")
	assert.NoError(t, err)

	access, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, user.ID.String(), resp.ID)
}

func TestService_RefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(&fakeRepo{})

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestService_Register_HashesPassword(t *testing.T) {
	var created *User
	repo := &fakeRepo{
		createFn: func(ctx context.Context, user *User) error { created = user; return nil },
	}

	svc := NewService(repo)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Name:     "New User",
		Password: "s3cret",
		Role:     "viewer",
	})
	assert.NoError(t, err)
	assert.Equal(t, "VIEWER", resp.Role)
	assert.NotEqual(t, "s3cret", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")))
}
