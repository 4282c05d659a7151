package record

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record is the stored shape of a link document. Every field except the id
// is optional: documents are inserted without validation, so a read must not
// assume any of them is present.
type Record struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       *string            `bson:"title"`
	Description *string            `bson:"description"`
	URL         *string            `bson:"url"`
	Like        *int64             `bson:"like"`
	CreatedAt   *time.Time         `bson:"created_at"`
	UpdatedAt   *time.Time         `bson:"updated_at"`
}

// View is the full read shape returned by detail, list and search.
type View struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Like        int64      `json:"like"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CreateView is the create response shape. It carries no created_at:
// callers of the original API never received it from create, only from reads.
type CreateView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Like        int64  `json:"like"`
}

func (r *Record) View() (*View, error) {
	switch {
	case r.Title == nil:
		return nil, &FieldError{Field: "title"}
	case r.Description == nil:
		return nil, &FieldError{Field: "description"}
	case r.URL == nil:
		return nil, &FieldError{Field: "url"}
	case r.Like == nil:
		return nil, &FieldError{Field: "like"}
	case r.CreatedAt == nil:
		return nil, &FieldError{Field: "created_at"}
	}

	return &View{
		ID:          FormatID(r.ID),
		Title:       *r.Title,
		Description: *r.Description,
		URL:         *r.URL,
		Like:        *r.Like,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func (r *Record) CreateView() (*CreateView, error) {
	switch {
	case r.Title == nil:
		return nil, &FieldError{Field: "title"}
	case r.Description == nil:
		return nil, &FieldError{Field: "description"}
	case r.URL == nil:
		return nil, &FieldError{Field: "url"}
	case r.Like == nil:
		return nil, &FieldError{Field: "like"}
	}

	return &CreateView{
		ID:          FormatID(r.ID),
		Title:       *r.Title,
		Description: *r.Description,
		URL:         *r.URL,
		Like:        *r.Like,
	}, nil
}
