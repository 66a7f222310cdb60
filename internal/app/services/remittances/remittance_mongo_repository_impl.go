package remittances

import (
	"context"

	"claimgate-service/internal/app/contracts"
	"claimgate-service/internal/app/models"
	"claimgate-service/internal/pkg/constvars"
	"claimgate-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RemittanceMongoRepository struct {
	Collection *mongo.Collection
}

func NewRemittanceMongoRepository(db *mongo.Client, dbName string) contracts.RemittanceRepository {
	return &RemittanceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRemittances),
	}
}

func (repo *RemittanceMongoRepository) CreateRemittance(ctx context.Context, remittance *models.Remittance) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, remittance)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return remittance.ID, nil
}

func (repo *RemittanceMongoRepository) FindByTraceNumber(ctx context.Context, traceNumber string) (*models.Remittance, error) {
	var remittance models.Remittance
	err := repo.Collection.FindOne(ctx, bson.M{"traceNumber": traceNumber}).Decode(&remittance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &remittance, nil
}
