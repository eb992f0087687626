package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T) (AuthService, *repositories.InMemoryUserRepository, storage.Storage) {
	t.Helper()

	auth.Init("test-secret", 86400)

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/files"})
	require.NoError(t, err)

	repo := repositories.NewInMemoryUserRepository()
	resumeService := NewResumeService(store, repo, UploadConfig{
		MaxSize:      10 * 1024 * 1024,
		AllowedTypes: []string{"application/pdf"},
	})
	authService := NewAuthService(repo, resumeService, email.NewNoopProvider())

	return authService, repo, store
}

func validSignupRequest() *dto.SignupRequest {
	return &dto.SignupRequest{
		Firstname:   "Ana",
		Lastname:    "Lee",
		Email:       "ana@x.com",
		CountryCode: "+1",
		Phone:       "5551234567",
		Password:    "super_password123",
	}
}

func TestNormalizePhone(t *testing.T) {
	phone, err := NormalizePhone("+1", "5551234567")
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", phone)

	// The contract is narrow: nothing about the country code is checked
	phone, err = NormalizePhone("", "5551234567")
	require.NoError(t, err)
	assert.Equal(t, "5551234567", phone)

	for _, national := range []string{"12345", "12345678901", "12a4567890", ""} {
		_, err := NormalizePhone("+1", national)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPhone, "national %q", national)
	}
}

func TestSignup_Success(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	user, err := svc.Signup(context.Background(), nil, validSignupRequest(), nil)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "+15551234567", user.Phone)
	assert.False(t, user.CareerPreferenceInternships)
	assert.False(t, user.CareerPreferenceJobs)

	stored, err := repo.FindByEmail(nil, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.Firstname)
	assert.Equal(t, "Lee", stored.Lastname)
	assert.Equal(t, "+15551234567", stored.Phone)

	// Never plaintext, and the digest verifies the original password
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "super_password123", *stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("super_password123", *stored.PasswordHash))
}

func TestSignup_OptionalFields(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	req := validSignupRequest()
	req.Gender = "FEMALE"
	req.DateOfBirth = "1999-04-12"
	req.College = "State University"
	req.WorkExperience = "FRESHER"
	req.CareerPreferenceJobs = true

	_, err := svc.Signup(context.Background(), nil, req, nil)
	require.NoError(t, err)

	stored, err := repo.FindByEmail(nil, req.Email)
	require.NoError(t, err)
	require.NotNil(t, stored.Gender)
	assert.Equal(t, "FEMALE", string(*stored.Gender))
	require.NotNil(t, stored.DateOfBirth)
	assert.Equal(t, 1999, stored.DateOfBirth.Year())
	require.NotNil(t, stored.College)
	assert.Equal(t, "State University", *stored.College)
	require.NotNil(t, stored.WorkExperience)
	assert.Equal(t, "FRESHER", string(*stored.WorkExperience))
	assert.True(t, stored.CareerPreferenceJobs)
	assert.False(t, stored.CareerPreferenceInternships)
	assert.Nil(t, stored.HomeTown)
	assert.Nil(t, stored.Country)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, nil, validSignupRequest(), nil)
	require.NoError(t, err)

	countBefore, err := repo.CountAll(nil)
	require.NoError(t, err)

	req := validSignupRequest()
	req.Firstname = "Other"
	_, err = svc.Signup(ctx, nil, req, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	countAfter, err := repo.CountAll(nil)
	require.NoError(t, err)
	assert.Equal(t, countBefore, countAfter)
}

func TestSignup_InvalidPhone(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	for _, phone := range []string{"12345", "12345678901", "12a4567890"} {
		req := validSignupRequest()
		req.Phone = phone
		_, err := svc.Signup(context.Background(), nil, req, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPhone, "phone %q", phone)
	}

	count, err := repo.CountAll(nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSignup_ConcurrentSameEmail(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			defer wg.Done()
			req := validSignupRequest()
			_, errs[i] = svc.Signup(ctx, nil, req, nil)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		}
	}
	assert.Equal(t, 1, successes)

	count, err := repo.CountAll(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSignup_WithResume(t *testing.T) {
	svc, repo, store := newTestAuthService(t)
	ctx := context.Background()

	resume := &ResumeFile{
		Reader: bytes.NewReader([]byte("%PDF-1.4 fake resume")),
		Info: dto.ResumeUpload{
			OriginalName: "ana_resume.pdf",
			ContentType:  "application/pdf",
			Size:         20,
		},
	}

	user, err := svc.Signup(ctx, nil, validSignupRequest(), resume)
	require.NoError(t, err)
	require.NotNil(t, user.ResumeURL)
	assert.True(t, strings.HasPrefix(*user.ResumeURL, "/files/resumes/"))

	record, err := repo.FindResumeByUserID(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana_resume.pdf", record.OriginalName)
	assert.Equal(t, "application/pdf", record.MimeType)
	assert.Contains(t, string(record.Metadata), "ana_resume.pdf")

	exists, err := store.Exists(ctx, record.StorageKey)
	require.NoError(t, err)
	assert.True(t, exists)
}

// racingRepo simulates the losing side of a signup race: the availability
// pre-check passes, then the insert hits the unique index.
type racingRepo struct {
	*repositories.InMemoryUserRepository
}

func (r *racingRepo) EmailExists(db *gorm.DB, email string) (bool, error) {
	return false, nil
}

func TestSignup_LostRaceCleansUpResume(t *testing.T) {
	auth.Init("test-secret", 86400)
	ctx := context.Background()

	basePath := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: basePath, BaseURL: "/files"})
	require.NoError(t, err)

	repo := &racingRepo{repositories.NewInMemoryUserRepository()}
	resumeService := NewResumeService(store, repo, UploadConfig{AllowedTypes: []string{"application/pdf"}})
	svc := NewAuthService(repo, resumeService, email.NewNoopProvider())

	_, err = svc.Signup(ctx, nil, validSignupRequest(), nil)
	require.NoError(t, err)

	resume := &ResumeFile{
		Reader: bytes.NewReader([]byte("%PDF-1.4 second resume")),
		Info: dto.ResumeUpload{
			OriginalName: "dup.pdf",
			ContentType:  "application/pdf",
			Size:         22,
		},
	}

	req := validSignupRequest()
	req.Firstname = "Second"
	_, err = svc.Signup(ctx, nil, req, resume)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// The loser's file must not survive
	entries, err := os.ReadDir(filepath.Join(basePath, "resumes"))
	if err == nil {
		assert.Empty(t, entries)
	} else {
		assert.True(t, os.IsNotExist(err))
	}

	count, err := repo.CountAll(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSignup_PasswordOptional(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	req := validSignupRequest()
	req.Password = ""
	_, err := svc.Signup(ctx, nil, req, nil)
	require.NoError(t, err)

	stored, err := repo.FindByEmail(nil, req.Email)
	require.NoError(t, err)
	assert.Nil(t, stored.PasswordHash)

	// A passwordless account can never authenticate through login
	_, _, err = svc.Login(ctx, nil, &dto.LoginRequest{Email: req.Email, Password: "anything"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, nil, validSignupRequest(), nil)
	require.NoError(t, err)

	response, token, err := svc.Login(ctx, nil, &dto.LoginRequest{
		Email:    "ana@x.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "login successful", response.Message)
	assert.Equal(t, user.ID, response.User.ID)
	assert.Equal(t, "ana@x.com", response.User.Email)
	assert.Equal(t, "+15551234567", response.User.Phone)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, nil, validSignupRequest(), nil)
	require.NoError(t, err)

	_, _, errUnknown := svc.Login(ctx, nil, &dto.LoginRequest{
		Email:    "nobody@x.com",
		Password: "super_password123",
	})
	_, _, errWrongPassword := svc.Login(ctx, nil, &dto.LoginRequest{
		Email:    "ana@x.com",
		Password: "wrong_password",
	})

	// Same error for both: the response must not confirm account existence
	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPassword)
}
