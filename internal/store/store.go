package store

import (
	"context"
	"errors"

	"github.com/devtemiloluwa/translator-app/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrEmailTaken means a user with that email already exists.
	ErrEmailTaken = errors.New("email already taken")
	// ErrNotFound means no document matched; for scoped deletes it covers both
	// "does not exist" and "owned by someone else".
	ErrNotFound = errors.New("not found")
)

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user models.User) (primitive.ObjectID, error)
	ByEmail(ctx context.Context, email string) (models.User, error)
	ByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

// TranslationStore persists per-user translation history.
type TranslationStore interface {
	Save(ctx context.Context, t models.Translation) (primitive.ObjectID, error)
	// ListByUser returns the user's translations, most recent first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Translation, error)
	// Delete removes at most one translation matching both id and owner.
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}
