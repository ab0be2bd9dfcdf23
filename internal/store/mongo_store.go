package store

import (
	"context"
	"errors"
	"time"

	"github.com/devtemiloluwa/translator-app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserStore implements UserStore over the "users" collection.
type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection("users")}
}

func (s *MongoUserStore) Create(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	// Existence check before insert. Not transactional; two concurrent signups
	// with the same email can race.
	err := s.coll.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return primitive.NilObjectID, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, err
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (s *MongoUserStore) ByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *MongoUserStore) ByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

// MongoTranslationStore implements TranslationStore over the "translations" collection.
type MongoTranslationStore struct {
	coll *mongo.Collection
}

func NewMongoTranslationStore(db *mongo.Database) *MongoTranslationStore {
	return &MongoTranslationStore{coll: db.Collection("translations")}
}

func (s *MongoTranslationStore) Save(ctx context.Context, t models.Translation) (primitive.ObjectID, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if _, err := s.coll.InsertOne(ctx, t); err != nil {
		return primitive.NilObjectID, err
	}
	return t.ID, nil
}

func (s *MongoTranslationStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Translation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	translations := make([]models.Translation, 0)
	if err := cursor.All(ctx, &translations); err != nil {
		return nil, err
	}
	return translations, nil
}

func (s *MongoTranslationStore) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	// Scoping by both _id and userId makes "someone else's record" and
	// "no such record" indistinguishable to the caller.
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
