package transactionsRepo

import (
	"context"

	"premierlodge/database"
	"premierlodge/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentTransactionRepository is the audit trail of payment attempts.
type PaymentTransactionRepository interface {
	Create(ctx context.Context, record models.PaymentTransaction) (string, error)
	GetByReference(ctx context.Context, reference string) (*models.PaymentTransaction, error)
	GetByGuestID(ctx context.Context, guestID string) ([]models.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, reference, status string) error
}

type mongoTransactionRepo struct {
	coll *mongo.Collection
}

// NewMongoTransactionRepo returns a PaymentTransactionRepository backed by MongoDB.
func NewMongoTransactionRepo() PaymentTransactionRepository {
	db := database.MongoClient.Database("premierlodge")
	return &mongoTransactionRepo{
		coll: db.Collection("payment_transactions"),
	}
}
