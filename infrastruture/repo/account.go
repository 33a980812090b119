package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.AccountRepo = &AccountRepo{}

// accountDocument is the stored form of an account.
type accountDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

// AccountRepo handles the persistence of accounts.
type AccountRepo struct {
	collection *mongo.Collection
}

// NewAccountRepo creates a new AccountRepo with the given MongoDB client, database name, and collection name.
func NewAccountRepo(client *mongo.Client, dbName, collectionName string) *AccountRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &AccountRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the unique username index.
func (a *AccountRepo) EnsureIndexes(ctx context.Context) error {
	_, err := a.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates an account in the repository.
// A username already used by another account returns dmn.ErrUsernameTaken.
func (a *AccountRepo) Save(ctx context.Context, account *dmn.Account) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": account.ID.String()}
	update := bson.M{
		"$set": bson.M{
			"username":     account.Username,
			"passwordHash": account.PasswordHash,
			"updatedAt":    time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := a.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dmn.ErrUsernameTaken
		}
		return fmt.Errorf("saving account: %w", err)
	}

	return nil
}

// ByID retrieves an account by its ID.
func (a *AccountRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Account, error) {
	return a.findOne(ctx, bson.M{"_id": id.String()})
}

// ByUsername retrieves an account by its username.
func (a *AccountRepo) ByUsername(ctx context.Context, username string) (*dmn.Account, error) {
	return a.findOne(ctx, bson.M{"username": username})
}

func (a *AccountRepo) findOne(ctx context.Context, filter bson.M) (*dmn.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var doc accountDocument
	if err := a.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrAccountNotFound
		}
		return nil, fmt.Errorf("finding account: %w", err)
	}
	return doc.toAccount()
}

func (d accountDocument) toAccount() (*dmn.Account, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("stored account id %q: %w", d.ID, err)
	}
	return &dmn.Account{
		ID:           id,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
	}, nil
}
