package services

import (
	"context"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/validator"
	"jobportal_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService owns the signup and login flows: validation and
// normalization of identity data, credential hashing and verification,
// and token issuance.
type AuthService interface {
	Signup(ctx context.Context, db *gorm.DB, req *dto.SignupRequest, resume *ResumeFile) (*models.User, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, string, error)
	GetUser(ctx context.Context, db *gorm.DB, id uint) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	resumeService ResumeService
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	resumeService ResumeService,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		resumeService: resumeService,
		emailProvider: emailProvider,
	}
}

// NormalizePhone validates the national segment (exactly 10 digit
// characters) and returns the canonical phone string: country code and
// national number concatenated. Nothing else about the number is checked.
func NormalizePhone(countryCode, national string) (string, error) {
	if !validator.IsNationalPhone(national) {
		return "", apperrors.ErrInvalidPhone
	}
	return countryCode + national, nil
}

// Signup validates and normalizes the candidate, hashes the password when
// present, stores the résumé file when present, and persists the record.
// The DB unique index on email stays the authoritative duplicate guard; the
// availability pre-check only gives well-formed early errors.
func (s *AuthServiceImpl) Signup(ctx context.Context, db *gorm.DB, req *dto.SignupRequest, resume *ResumeFile) (*models.User, error) {
	phone, err := NormalizePhone(req.CountryCode, req.Phone)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(db, req.Email)
	if err != nil {
		return nil, apperrors.StorageUnavailable(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	var passwordHash *string
	if req.Password != "" {
		if err := auth.ValidatePassword(req.Password); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		passwordHash = &hashed
	}

	user := &models.User{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Phone:        phone,

		Gender:                optionalEnum[models.Gender](req.Gender),
		DateOfBirth:           parseDateOfBirth(req.DateOfBirth),
		College:               optionalString(req.College),
		CurrentLocation:       optionalString(req.CurrentLocation),
		HomeTown:              optionalString(req.HomeTown),
		Country:               optionalString(req.Country),
		PreferredWorkLocation: optionalString(req.PreferredWorkLocation),
		PreferredWorkMode:     optionalString(req.PreferredWorkMode),
		WorkExperience:        optionalEnum[models.WorkExperience](req.WorkExperience),

		CareerPreferenceInternships: req.CareerPreferenceInternships,
		CareerPreferenceJobs:        req.CareerPreferenceJobs,
	}

	var resumeKey, resumeURL string
	if resume != nil {
		resumeKey, resumeURL, err = s.resumeService.Store(ctx, resume)
		if err != nil {
			return nil, err
		}
		user.ResumeURL = &resumeURL
	}

	if err := s.userRepo.Create(db, user); err != nil {
		// The file was written before the insert; do not leave it orphaned.
		s.resumeService.Remove(ctx, resumeKey)

		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.StorageUnavailable(err)
	}

	if resume != nil {
		if _, err := s.resumeService.SaveRecord(db, user.ID, resumeKey, resumeURL, resume.Info); err != nil {
			// The account exists and the file is stored; losing the metadata
			// row is recoverable and must not fail the signup.
			logger.CtxWithError(ctx, "failed to save resume record", err, "user_id", user.ID, "key", resumeKey)
		}
	}

	s.sendWelcomeEmail(ctx, user)

	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email,
// missing password hash and wrong password all return the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, string, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", apperrors.StorageUnavailable(err)
	}

	if user.PasswordHash == nil || !auth.CheckPasswordHash(req.Password, *user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Message: "login successful",
		User:    toUserDTO(user),
	}, token, nil
}

// GetUser returns the public view of a user by id.
func (s *AuthServiceImpl) GetUser(ctx context.Context, db *gorm.DB, id uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("user", "User not found")
		}
		return nil, apperrors.StorageUnavailable(err)
	}
	u := toUserDTO(user)
	return &u, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(ctx context.Context, user *models.User) {
	subject, body := email.WelcomeEmail(user.Firstname)
	if err := s.emailProvider.Send(user.Email, subject, body); err != nil {
		logger.CtxWithError(ctx, "failed to send welcome email", err, "user_id", user.ID)
	}
}

func toUserDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Email:     user.Email,
		Phone:     user.Phone,
		ResumeURL: user.ResumeURL,
		CreatedAt: user.CreatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalEnum[T ~string](s string) *T {
	if s == "" {
		return nil
	}
	v := T(s)
	return &v
}

// parseDateOfBirth trusts the structural validator: the value is either
// empty or a valid 2006-01-02 date.
func parseDateOfBirth(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
