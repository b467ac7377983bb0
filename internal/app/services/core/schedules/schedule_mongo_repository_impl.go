package schedules

import (
	"context"
	"fmt"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

var _ contracts.ScheduleRepository = (*ScheduleMongoRepository)(nil)

func NewScheduleMongoRepository(db *mongo.Client, dbName string) *ScheduleMongoRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSchedules),
	}
}

// EnsureIndexes creates the indexes listing and lookups by name rely on.
func (repo *ScheduleMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *ScheduleMongoRepository) Create(ctx context.Context, schedule *models.Schedule) (string, error) {
	schedule.SetCreatedAtUpdatedAt()

	result, err := repo.Collection.InsertOne(ctx, schedule)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(fmt.Errorf("unexpected inserted id %v", result.InsertedID))
	}
	schedule.ID = objectID
	return objectID.Hex(), nil
}

func (repo *ScheduleMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Schedule, int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	schedules := []models.Schedule{}
	err = cursor.All(ctx, &schedules)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schedules, int(total), nil
}

// FindEvery streams the whole collection through fn and stops at the first error fn returns.
func (repo *ScheduleMongoRepository) FindEvery(ctx context.Context, fn func(schedule models.Schedule) error) error {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var schedule models.Schedule
		if err := cursor.Decode(&schedule); err != nil {
			return exceptions.ErrMongoDBIterateDocuments(err)
		}
		if err := fn(schedule); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err)
	}
	return nil
}

func (repo *ScheduleMongoRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	var schedule models.Schedule
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

func (repo *ScheduleMongoRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	schedule.SetUpdatedAt()
	update := bson.M{
		"$set": bson.M{
			"name":         schedule.Name,
			"interval":     schedule.Interval,
			"format":       schedule.Format,
			"openHours":    schedule.OpenHours,
			"controlHours": schedule.ControlHours,
			"updatedAt":    schedule.UpdatedAt,
		},
	}

	result, err := repo.Collection.UpdateByID(ctx, schedule.ID, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrScheduleNotFound(mongo.ErrNoDocuments, schedule.ID.Hex())
	}
	return nil
}

func (repo *ScheduleMongoRepository) Delete(ctx context.Context, scheduleID string) error {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrScheduleNotFound(mongo.ErrNoDocuments, scheduleID)
	}
	return nil
}
