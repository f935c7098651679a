package service_test

import (
	"fmt"
	"testing"

	"github.com/farmlink/internal/config"
	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/repository"
	"github.com/farmlink/internal/service"
	"github.com/farmlink/internal/session"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the service stack against an in-memory database and the
// in-memory session store.
type testEnv struct {
	db       *gorm.DB
	users    *repository.UserRepository
	listings *repository.ListingRepository
	orders   *repository.OrderRepository
	messages *repository.MessageRepository

	auth    *service.AuthService
	listing *service.ListingService
	order   *service.OrderService
	message *service.MessageService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Order{},
		&models.Message{},
	))

	env := &testEnv{
		db:       db,
		users:    repository.NewUserRepository(db),
		listings: repository.NewListingRepository(db),
		orders:   repository.NewOrderRepository(db),
		messages: repository.NewMessageRepository(db),
	}

	sessionCfg := config.SessionConfig{
		Secret:      "test-secret",
		ExpireHours: 1,
		CookieName:  "farmlink_session",
	}
	env.auth = service.NewAuthService(env.users, session.NewMemoryStore(), sessionCfg)
	env.listing = service.NewListingService(env.listings)
	env.order = service.NewOrderService(env.orders, env.listings)
	env.message = service.NewMessageService(env.messages, env.users, nil)

	return env
}

// registerUser registers a user and returns the stored row.
func (env *testEnv) registerUser(t *testing.T, username string, accountType models.AccountType) *models.User {
	t.Helper()
	user, err := env.auth.Register(&service.RegisterRequest{
		Username:    username,
		Email:       username + "@example.com",
		Password:    "password1",
		AccountType: accountType,
	})
	require.NoError(t, err)
	return user
}
