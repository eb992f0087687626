package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ResumeFile is a résumé file part ready to be stored.
type ResumeFile struct {
	Reader io.Reader
	Info   dto.ResumeUpload
}

type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

// ResumeService owns résumé file placement and metadata. Storage keys are
// generated uuids: user-controlled filenames never reach the filesystem or
// bucket namespace, and two uploads can never collide.
type ResumeService interface {
	Store(ctx context.Context, file *ResumeFile) (key string, url string, err error)
	Remove(ctx context.Context, key string)
	SaveRecord(db *gorm.DB, userID uint, key, url string, info dto.ResumeUpload) (*models.Resume, error)
}

type ResumeServiceImpl struct {
	store    storage.Storage
	userRepo repositories.UserRepository
	cfg      UploadConfig
}

func NewResumeService(store storage.Storage, userRepo repositories.UserRepository, cfg UploadConfig) ResumeService {
	return &ResumeServiceImpl{
		store:    store,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Store validates the file part and writes it under a fresh storage key.
func (s *ResumeServiceImpl) Store(ctx context.Context, file *ResumeFile) (string, string, error) {
	if err := s.validateUpload(file.Info); err != nil {
		return "", "", err
	}

	key := fmt.Sprintf("resumes/%s%s", uuid.NewString(), safeExtension(file.Info.OriginalName))

	if err := s.store.Save(ctx, key, file.Reader, file.Info.ContentType); err != nil {
		return "", "", apperrors.StorageUnavailable(err)
	}

	return key, s.store.GetURL(key), nil
}

// Remove deletes a stored file. Used to clean up when signup fails after
// the résumé was already written; best-effort by design.
func (s *ResumeServiceImpl) Remove(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		logger.CtxWithError(ctx, "failed to remove orphaned resume file", err, "key", key)
	}
}

// SaveRecord persists the metadata row linking the stored file to its user.
func (s *ResumeServiceImpl) SaveRecord(db *gorm.DB, userID uint, key, url string, info dto.ResumeUpload) (*models.Resume, error) {
	metadata, err := json.Marshal(map[string]interface{}{
		"original_name": info.OriginalName,
		"content_type":  info.ContentType,
		"size":          info.Size,
		"uploaded_at":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resume := &models.Resume{
		UserID:       userID,
		StorageKey:   key,
		OriginalName: info.OriginalName,
		MimeType:     info.ContentType,
		Size:         info.Size,
		URL:          url,
		Metadata:     datatypes.JSON(metadata),
	}

	if err := s.userRepo.CreateResume(db, resume); err != nil {
		return nil, apperrors.StorageUnavailable(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) validateUpload(info dto.ResumeUpload) error {
	if !IsSafeFilename(info.OriginalName) {
		return apperrors.ErrUnsafeFilename
	}
	if s.cfg.MaxSize > 0 && info.Size > s.cfg.MaxSize {
		return apperrors.NewBadRequestError(fmt.Sprintf("File too large: limit is %d bytes", s.cfg.MaxSize))
	}
	if len(s.cfg.AllowedTypes) > 0 && info.ContentType != "" {
		allowed := false
		for _, t := range s.cfg.AllowedTypes {
			if strings.EqualFold(t, info.ContentType) {
				allowed = true
				break
			}
		}
		if !allowed {
			return apperrors.NewBadRequestError("Unsupported file type: " + info.ContentType)
		}
	}
	return nil
}

// IsSafeFilename rejects names with path separators or traversal sequences.
// The name is stored as metadata only, but it still ends up in logs and UIs.
func IsSafeFilename(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return true
}

// safeExtension returns the lowercase extension of name when it is a plain
// alphanumeric extension, empty otherwise.
func safeExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
