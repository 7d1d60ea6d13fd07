package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fruitmart/shop-api/internal/core/domain"
)

const (
	memberCollection  = "members"
	counterCollection = "counters"
	memberCounterID   = "member_id"
)

// MongoMemberRepository persists members. Ids are sequential integers drawn
// from a counter document, matching the auto-increment column the schema
// calls for.
type MongoMemberRepository struct {
	members  *mongo.Collection
	counters *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MongoMemberRepository {
	return &MongoMemberRepository{
		members:  db.Collection(memberCollection),
		counters: db.Collection(counterCollection),
	}
}

type mongoMember struct {
	ID        int64  `bson:"_id"`
	Username  string `bson:"username"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Phone     string `bson:"phone,omitempty"`
	Birthdate string `bson:"birthdate,omitempty"`
}

// EnsureIndexes creates the unique indexes on username and email. Run once
// at startup; a duplicate insert racing past the pre-insert lookup fails
// here instead of creating a second identity.
func (r *MongoMemberRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.members.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create member indexes: %w", err)
	}
	return nil
}

func (r *MongoMemberRepository) Create(ctx context.Context, member *domain.Member) (int64, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("insert member: %w", err)
	}

	doc := mongoMember{
		ID:        id,
		Username:  member.Username,
		Email:     member.Email,
		Password:  member.Password,
		Phone:     member.Phone,
		Birthdate: member.Birthdate,
	}

	if _, err := r.members.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, domain.ErrMemberExists
		}
		return 0, fmt.Errorf("insert member: %w", err)
	}

	return id, nil
}

func (r *MongoMemberRepository) FindByIdentity(ctx context.Context, username, email string) (*domain.Member, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	return r.findOne(ctx, filter)
}

func (r *MongoMemberRepository) FindByCredentials(ctx context.Context, email, password string) (*domain.Member, error) {
	// Exact match on the stored password, as the login contract demands.
	return r.findOne(ctx, bson.M{"email": email, "password": password})
}

func (r *MongoMemberRepository) findOne(ctx context.Context, filter bson.M) (*domain.Member, error) {
	var mm mongoMember
	if err := r.members.FindOne(ctx, filter).Decode(&mm); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	return &domain.Member{
		ID:        mm.ID,
		Username:  mm.Username,
		Email:     mm.Email,
		Password:  mm.Password,
		Phone:     mm.Phone,
		Birthdate: mm.Birthdate,
	}, nil
}

// nextID atomically increments and returns the member id counter.
func (r *MongoMemberRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": memberCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next member id: %w", err)
	}

	return counter.Seq, nil
}
