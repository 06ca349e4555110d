package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserDirectory resolves user ids to display names with one $in query per
// batch. Callers collect the distinct employee/client id set of a snapshot
// first and resolve it in a single round trip instead of one lookup per
// appointment.
type UserDirectory struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewUserDirectory creates a new directory over the users collection.
func NewUserDirectory(database *mongo.Database, logger *zap.Logger) *UserDirectory {
	return &UserDirectory{
		collection: database.Collection("users"),
		logger:     logger.Named("user_directory"),
	}
}

// NamesByIDs returns a name per known id. Unknown ids are simply absent from
// the result.
func (d *UserDirectory) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	distinct := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	err := withRetry(ctx, func() error {
		cursor, err := d.collection.Find(ctx, bson.M{"_id": bson.M{"$in": distinct}})
		if err != nil {
			return fmt.Errorf("failed to query users: %w", err)
		}
		defer cursor.Close(ctx)

		for cursor.Next(ctx) {
			var doc struct {
				ID   string `bson:"_id"`
				Name string `bson:"name"`
			}
			if err := cursor.Decode(&doc); err != nil {
				d.logger.Warn("skipping undecodable user document", zap.Error(err))
				continue
			}
			names[doc.ID] = doc.Name
		}
		return cursor.Err()
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
