package handlers

import (
	"testing"

	"github.com/eventbook/event-booking-api/internal/auth"
	"github.com/eventbook/event-booking-api/internal/config"
	"github.com/eventbook/event-booking-api/internal/models"
	"github.com/eventbook/event-booking-api/internal/notifier"
	"github.com/eventbook/event-booking-api/internal/store"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db            *gorm.DB
	auth          *auth.AuthHandler
	events        *EventHandler
	registrations *RegistrationHandler
	notified      *fakeNotifier
}

type fakeNotifier struct {
	calls []models.Registration
}

func (f *fakeNotifier) NotifyRegistration(event models.Event, registration models.Registration) error {
	f.calls = append(f.calls, registration)
	return nil
}

var _ notifier.Notifier = (*fakeNotifier)(nil)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Event{}, &models.Registration{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", BcryptCost: bcrypt.MinCost}
	authHandler := auth.NewAuthHandler(cfg, store.NewUserStore(db, cfg.BcryptCost))
	notified := &fakeNotifier{}

	return &testEnv{
		db:            db,
		auth:          authHandler,
		events:        NewEventHandler(store.NewEventStore(db), authHandler),
		registrations: NewRegistrationHandler(store.NewRegistrationStore(db), notified, authHandler),
		notified:      notified,
	}
}

// bearerFor creates a user and returns an Authorization header for it.
func (e *testEnv) bearerFor(t *testing.T, username string) (uint, string) {
	t.Helper()
	user := models.User{Username: username, Password: "x", Role: models.RoleHost, Name: username}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	token, err := e.auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user.ID, "Bearer " + token
}
