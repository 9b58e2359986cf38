package utils

import (
	"context"
	"fmt"
	"time"

	"go-breakfast/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	modifiersCollection = "modifiers"
	menuItemsCollection = "menu_items"
)

// LoadCatalog reads the menu reference data from db. Items keep the order of their
// "position" field, falling back to _id.
func LoadCatalog(ctx context.Context, db *mongo.Database) (*models.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var modifiers []models.Modifier
	cursor, err := db.Collection(modifiersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find modifiers: %w", err)
	}
	if err := cursor.All(ctx, &modifiers); err != nil {
		return nil, fmt.Errorf("decode modifiers: %w", err)
	}

	var items []models.MenuItem
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err = db.Collection(menuItemsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("collection %q is empty", menuItemsCollection)
	}
	return models.NewCatalog(items, modifiers)
}
