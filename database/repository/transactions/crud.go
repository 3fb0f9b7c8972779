package transactionsRepo

import (
	"context"
	"errors"
	"time"

	"premierlodge/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new payment transaction record and returns its ID.
func (r *mongoTransactionRepo) Create(ctx context.Context, record models.PaymentTransaction) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByReference returns the transaction recorded for a payment reference.
func (r *mongoTransactionRepo) GetByReference(ctx context.Context, reference string) (*models.PaymentTransaction, error) {
	var record models.PaymentTransaction
	err := r.coll.FindOne(ctx, bson.M{"reference": reference}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByGuestID fetches all transactions recorded for a guest.
func (r *mongoTransactionRepo) GetByGuestID(ctx context.Context, guestID string) ([]models.PaymentTransaction, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"guestId": guestID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PaymentTransaction
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateStatus moves a transaction to a new status.
func (r *mongoTransactionRepo) UpdateStatus(ctx context.Context, reference, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"reference": reference},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("transaction not found")
	}
	return nil
}
