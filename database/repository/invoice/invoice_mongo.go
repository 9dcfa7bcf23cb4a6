package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"streamify/database"
	"streamify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	// Create inserts a new invoice record.
	Create(inv *models.Invoice) error
	// ListByUser retrieves all invoices for a user, newest first.
	ListByUser(userID string) ([]models.Invoice, error)
}

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new instance of InvoiceRepository using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	coll := database.MongoClient.Database("streamify").Collection("invoices")
	return &MongoInvoiceRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new invoice document.
func (r *MongoInvoiceRepo) Create(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, inv)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// ListByUser retrieves all invoices for a user, newest first.
func (r *MongoInvoiceRepo) ListByUser(userID string) ([]models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}
	return invoices, nil
}
