package repositories

import (
	"sync"
	"time"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

// InMemoryUserRepository keeps users in a map. It backs tests and serves as
// a reference for the repository contract: Create enforces email uniqueness
// atomically, exactly like the database unique index does.
type InMemoryUserRepository struct {
	mu       sync.RWMutex
	nextID   uint
	byID     map[uint]*models.User
	byEmail  map[string]uint
	resumes  map[uint]*models.Resume
	resumeID uint
}

var _ UserRepository = (*InMemoryUserRepository)(nil)

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		nextID:  1,
		byID:    make(map[uint]*models.User),
		byEmail: make(map[string]uint),
		resumes: make(map[uint]*models.Resume),
	}
}

// Create assigns an id and inserts the record. The uniqueness check and the
// insert happen under one lock: concurrent calls with the same email cannot
// both succeed.
func (r *InMemoryUserRepository) Create(db *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return ErrUserAlreadyExists
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	userCopy := *user
	r.byID[userCopy.ID] = &userCopy
	r.byEmail[userCopy.Email] = userCopy.ID
	return nil
}

func (r *InMemoryUserRepository) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	userCopy := *user
	return &userCopy, nil
}

func (r *InMemoryUserRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	userCopy := *r.byID[id]
	return &userCopy, nil
}

func (r *InMemoryUserRepository) EmailExists(db *gorm.DB, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *InMemoryUserRepository) CountAll(db *gorm.DB) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.byID)), nil
}

func (r *InMemoryUserRepository) CreateResume(db *gorm.DB, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resumeID++
	resume.ID = r.resumeID
	resume.CreatedAt = time.Now()

	resumeCopy := *resume
	r.resumes[resumeCopy.UserID] = &resumeCopy
	return nil
}

func (r *InMemoryUserRepository) FindResumeByUserID(db *gorm.DB, userID uint) (*models.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resume, ok := r.resumes[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	resumeCopy := *resume
	return &resumeCopy, nil
}
