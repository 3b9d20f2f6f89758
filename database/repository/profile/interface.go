package profileRepo

import (
	"context"

	"github.com/Nadeem-mohammad0021/assistant/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetByID retrieves a profile by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	// ListNotifiable retrieves all profiles with a non-empty contact
	// email, the candidate set for a notification evaluation pass.
	ListNotifiable(ctx context.Context) ([]models.Profile, error)
	// Create inserts a new profile record.
	Create(ctx context.Context, profile *models.Profile) error
	// SetFields applies a partial $set update to a profile.
	SetFields(ctx context.Context, id string, fields bson.M) error
	// Delete removes a profile record by its ID.
	Delete(ctx context.Context, id string) error
}
