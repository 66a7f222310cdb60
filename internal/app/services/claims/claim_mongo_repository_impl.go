package claims

import (
	"context"
	"time"

	"claimgate-service/internal/app/contracts"
	"claimgate-service/internal/app/models"
	"claimgate-service/internal/pkg/constvars"
	"claimgate-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClaimMongoRepository struct {
	Collection *mongo.Collection
}

func NewClaimMongoRepository(db *mongo.Client, dbName string) contracts.ClaimRepository {
	return &ClaimMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClaimSubmissions),
	}
}

func (repo *ClaimMongoRepository) CreateSubmission(ctx context.Context, submission *models.ClaimSubmission) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, submission)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return submission.ID, nil
}

func (repo *ClaimMongoRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*models.ClaimSubmission, error) {
	var submission models.ClaimSubmission
	err := repo.Collection.FindOne(ctx, bson.M{"_id": submissionID}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &submission, nil
}

func (repo *ClaimMongoRepository) UpdateSubmissionStatus(ctx context.Context, submissionID, status string) error {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": submissionID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
