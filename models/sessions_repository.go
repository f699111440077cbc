package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionNotFound is returned when a session does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionTTL is how long a login session stays valid.
const SessionTTL = 24 * time.Hour

type SessionsRepository struct {
	db *gorm.DB
}

func NewSessionsRepository(db *gorm.DB) *SessionsRepository {
	return &SessionsRepository{
		db: db,
	}
}

func (r *SessionsRepository) Create(userID uint) (*Session, error) {
	session := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the session with the given ID. Expired sessions are
// treated as missing.
func (r *SessionsRepository) Get(id string) (*Session, error) {
	var session Session
	if err := r.db.
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionsRepository) Delete(id string) error {
	return r.db.Delete(&Session{}, "id = ?", id).Error
}
