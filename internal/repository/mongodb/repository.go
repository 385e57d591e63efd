package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
)

// ErrNoSnapshot is returned when the archive holds no snapshot yet.
var ErrNoSnapshot = errors.New("no dashboard snapshot stored")

// Repository defines the interface for snapshot storage.
type Repository interface {
	SaveSnapshot(ctx context.Context, snapshot models.DashboardSnapshot) error
	LatestSnapshot(ctx context.Context) (models.DashboardSnapshot, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository connects to uri and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri).SetRegistry(NewRegistry())
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "dashboard_snapshots",
	}, nil
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// SaveSnapshot archives a dashboard snapshot.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.DashboardSnapshot) error {
	if _, err := r.collection().InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert dashboard snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recently generated snapshot.
func (r *MongoDBRepository) LatestSnapshot(ctx context.Context) (models.DashboardSnapshot, error) {
	var snapshot models.DashboardSnapshot
	opts := options.FindOne().SetSort(bson.D{{Key: "generated_at", Value: -1}})
	err := r.collection().FindOne(ctx, bson.D{}, opts).Decode(&snapshot)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return snapshot, ErrNoSnapshot
	case err != nil:
		return snapshot, fmt.Errorf("failed to load latest snapshot: %w", err)
	}
	return snapshot, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
