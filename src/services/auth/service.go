package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-Sentinel/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotPreRegistered: no admin-created record matches the email.
	// Registration is refused and no credential may be created.
	ErrNotPreRegistered = errors.New("not pre-registered")
	// ErrCredentialConflict: the email already has a credential.
	ErrCredentialConflict = errors.New("email already registered")
)

// RecordStore is the slice of the profile store the reconciliation needs.
// The Mongo implementation lives in store.go; tests use a fake.
type RecordStore interface {
	// FindPreRegistration returns the key and raw record of the
	// pre-registration whose emailid equals email, or ErrNotPreRegistered.
	FindPreRegistration(ctx context.Context, role, email string) (string, bson.M, error)
	// CreateCredential inserts the credential, ErrCredentialConflict on
	// duplicate email.
	CreateCredential(ctx context.Context, user *models.User) error
	// MigrateRecord writes record under uid and removes oldKey. Write and
	// delete must commit together.
	MigrateRecord(ctx context.Context, role, oldKey, uid string, record bson.M) error
	// FindCredential returns the credential for email, nil when absent.
	FindCredential(ctx context.Context, email string) (*models.User, error)
}

type Service struct {
	store  RecordStore
	newKey func() string
}

func NewService() *Service {
	return &Service{store: &mongoStore{}, newKey: uuid.NewString}
}

// NewServiceWithStore ใช้ใน test
func NewServiceWithStore(store RecordStore) *Service {
	return &Service{store: store, newKey: uuid.NewString}
}

// NewServiceWithKeyGen ใช้ใน test ที่ต้องกำหนด session key เอง
func NewServiceWithKeyGen(store RecordStore, newKey func() string) *Service {
	return &Service{store: store, newKey: newKey}
}

// Register claims a pre-registered record for a real login, exactly once.
// The existence check must run before credential creation.
func (s *Service) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if role != models.RoleStudent && role != models.RoleCounselor {
		return nil, errors.New("invalid role")
	}

	// 1. Pre-registration check ก่อนแตะ credentials
	oldKey, record, err := s.store.FindPreRegistration(ctx, role, email)
	if err != nil {
		return nil, err
	}

	// 2. Create the credential; the session key is issued here
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        s.newKey(),
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateCredential(ctx, user); err != nil {
		return nil, err
	}

	// 3. Migrate the record to the session key, uid injected into the payload
	migrated := bson.M{}
	for k, v := range record {
		if k == "_id" {
			continue
		}
		migrated[k] = v
	}
	migrated["uid"] = user.ID
	if role == models.RoleCounselor {
		migrated["role"] = models.RoleCounselor
	}

	if err := s.store.MigrateRecord(ctx, role, oldKey, user.ID, migrated); err != nil {
		return nil, err
	}

	return user, nil
}

// Login ตรวจ credential และคืน user (token ออกที่ controller)
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.FindCredential(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return user, nil
}

// GetUserByEmail ใช้โดย Google OAuth flow ไม่สร้าง credential ใหม่
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.FindCredential(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not registered")
	}
	return user, nil
}
