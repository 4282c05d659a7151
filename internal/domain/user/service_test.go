package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type fakeUserRepo struct {
	users     []bson.M
	insertErr error
}

func (f *fakeUserRepo) Insert(_ context.Context, doc bson.M) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.users = append(f.users, doc)
	return nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u["email"] == email {
			return true, nil
		}
	}
	return false, nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return NewService(repo, NewSchemaValidator(), slog.Default()), repo
}

func TestService_Register(t *testing.T) {
	svc, repo := newTestService()

	payload := []byte(`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret1","nickname":"countess"}`)
	require.NoError(t, svc.Register(context.Background(), payload))

	require.Len(t, repo.users, 1)
	stored := repo.users[0]

	// The password is stored only as a bcrypt hash.
	hash, ok := stored["password"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "secret1", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))

	// create_at (field name kept from the original collection) is stamped.
	createAt, ok := stored["create_at"].(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().UTC(), createAt, time.Minute)

	// Extra fields pass through unchanged.
	assert.Equal(t, "countess", stored["nickname"])
}

func TestService_Register_TimestampIsOutputOnly(t *testing.T) {
	svc, repo := newTestService()

	payload := []byte(`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret1","created_at":"1815-12-10"}`)
	require.NoError(t, svc.Register(context.Background(), payload))

	require.Len(t, repo.users, 1)
	stored := repo.users[0]

	_, hasLegacyKey := stored["created_at"]
	assert.False(t, hasLegacyKey, "caller-supplied created_at must be dropped")

	createAt, ok := stored["create_at"].(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().UTC(), createAt, time.Minute)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService()

	payload := []byte(`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret1"}`)
	require.NoError(t, svc.Register(context.Background(), payload))

	err := svc.Register(context.Background(), payload)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.users, 1, "duplicate registration must not insert a second document")
}

func TestService_Register_DuplicateFromIndexRace(t *testing.T) {
	svc, repo := newTestService()
	repo.insertErr = ErrEmailTaken

	payload := []byte(`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret1"}`)
	err := svc.Register(context.Background(), payload)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_ValidationErrorPropagates(t *testing.T) {
	svc, repo := newTestService()

	err := svc.Register(context.Background(), []byte(`{"first_name":"Ada"}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "last_name", validationErr.Field)
	assert.Empty(t, repo.users)
}

func TestService_Register_InvalidJSON(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Register(context.Background(), []byte("not json"))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
