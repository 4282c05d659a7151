package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, payload []byte) error
}

// Service handles registration: schema validation, password hashing,
// email uniqueness, insert. The clear-text password never reaches the store.
type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "registration_service"),
	}
}

func (s *Service) Register(ctx context.Context, payload []byte) error {
	var doc bson.M
	if err := bson.UnmarshalExtJSON(payload, false, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := s.validator.Validate(doc); err != nil {
		s.log.Debug("registration validation failed", "error", err)
		return err
	}

	email := doc["email"].(string)

	hash, err := bcrypt.GenerateFromPassword([]byte(doc["password"].(string)), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	doc["password"] = string(hash)

	// The timestamp is output-only and stamped here; the stored field is
	// spelled create_at because the collection predates this service.
	delete(doc, "_id")
	delete(doc, "created_at")
	doc["create_at"] = time.Now().UTC()

	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		s.log.Error("failed to check email uniqueness", "error", err)
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}

	if err := s.repo.Insert(ctx, doc); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return ErrEmailTaken
		}
		s.log.Error("failed to insert user", "error", err)
		return fmt.Errorf("insert user: %w", err)
	}

	s.log.Info("user registered", "email", email)
	return nil
}
