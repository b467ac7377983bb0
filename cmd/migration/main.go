package main

import (
	"context"
	"log"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/drivers/database"
	"openhours-service/internal/app/services/core/schedules"
	"time"
)

// Creates the MongoDB indexes of the schedules collection and exits.
func main() {
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}

	client := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	repository := schedules.NewScheduleMongoRepository(client, driverConfig.MongoDB.DbName)
	if err := repository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	log.Printf("Indexes of database %q are up to date", driverConfig.MongoDB.DbName)
}
