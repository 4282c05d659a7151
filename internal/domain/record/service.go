package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]View, error)
	Create(ctx context.Context, payload []byte) (*CreateView, error)
	Get(ctx context.Context, rawID string) (*View, error)
	Update(ctx context.Context, rawID string, patch []byte) error
	Delete(ctx context.Context, rawID string) error
	Search(ctx context.Context, needle string) ([]View, error)
	Like(ctx context.Context, rawID string) error
}

// Service owns the record lifecycle: timestamps are stamped here, payloads
// are passed to the store as-is, and views fail on absent fields.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "record_service"),
	}
}

// List returns every record. There is no pagination: the result set grows
// with the collection, which is a documented limitation of this API.
func (s *Service) List(ctx context.Context) ([]View, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	return toViews(records)
}

// Create accepts any JSON object, stamps created_at and inserts it. The
// inserted document is read back by its assigned id and reshaped into the
// create view, which deliberately omits created_at.
func (s *Service) Create(ctx context.Context, payload []byte) (*CreateView, error) {
	doc, err := parsePayload(payload)
	if err != nil {
		return nil, err
	}

	delete(doc, "_id")
	doc["created_at"] = time.Now().UTC()

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		s.log.Error("failed to insert record", "error", err)
		return nil, fmt.Errorf("insert record: %w", err)
	}

	inserted, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read back record: %w", err)
	}

	view, err := inserted.CreateView()
	if err != nil {
		return nil, err
	}

	s.log.Info("record created", "record_id", view.ID)
	return view, nil
}

func (s *Service) Get(ctx context.Context, rawID string) (*View, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find record", "record_id", rawID, "error", err)
		return nil, fmt.Errorf("find record: %w", err)
	}

	return rec.View()
}

// Update merges the patch into the existing document: fields absent from the
// patch are left untouched. updated_at is stamped on every call.
func (s *Service) Update(ctx context.Context, rawID string, patch []byte) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}

	fields, err := parsePayload(patch)
	if err != nil {
		return err
	}

	delete(fields, "_id")
	fields["updated_at"] = time.Now().UTC()

	matched, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		s.log.Error("failed to update record", "record_id", rawID, "error", err)
		return fmt.Errorf("update record: %w", err)
	}
	if matched == 0 {
		return ErrNotFound
	}

	s.log.Info("record updated", "record_id", rawID)
	return nil
}

// Delete removes the document. Deleting an id that matches nothing still
// succeeds: the end state is the same either way.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}

	if _, err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Error("failed to delete record", "record_id", rawID, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "record_id", rawID)
	return nil
}

// Search matches the needle against title only, as a case-insensitive
// literal substring. An empty needle matches every record.
func (s *Service) Search(ctx context.Context, needle string) ([]View, error) {
	records, err := s.repo.SearchByTitle(ctx, needle)
	if err != nil {
		s.log.Error("failed to search records", "needle", needle, "error", err)
		return nil, fmt.Errorf("search records: %w", err)
	}
	return toViews(records)
}

// Like adds one to the record's like counter in a single store operation.
// A record without a like field is reported as a missing-field failure,
// not silently initialized.
func (s *Service) Like(ctx context.Context, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}

	matched, err := s.repo.IncrementLike(ctx, id)
	if err != nil {
		s.log.Error("failed to increment like", "record_id", rawID, "error", err)
		return fmt.Errorf("increment like: %w", err)
	}
	if matched == 0 {
		// Either the record is gone or it has no like field to increment.
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("increment like: %w", err)
		}
		return &FieldError{Field: "like"}
	}

	s.log.Info("record liked", "record_id", rawID)
	return nil
}

// parsePayload decodes relaxed extended JSON so integer fields stay integers
// on their way into the store. Anything that is a JSON object passes.
func parsePayload(payload []byte) (bson.M, error) {
	var doc bson.M
	if err := bson.UnmarshalExtJSON(payload, false, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return doc, nil
}

func toViews(records []Record) ([]View, error) {
	views := make([]View, 0, len(records))
	for i := range records {
		v, err := records[i].View()
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}
