package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kaytee124/jobserverapi/pkg/auth"
)

// UserRepository implements auth.UserRepository over the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

// userDoc keeps the field names of the existing users collection.
type userDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserType    string             `bson:"userType"`
	FirstName   string             `bson:"Firstname"`
	LastName    string             `bson:"Lastname"`
	DateOfBirth string             `bson:"DateOfBirth"`
	Gender      string             `bson:"Gender"`
	Email       string             `bson:"Email"`
	PhoneNumber string             `bson:"PhoneNumber"`
	Origin      string             `bson:"Origin"`
	CompanyName *string            `bson:"CompanyName"`
	Password    string             `bson:"Password"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (r *UserRepository) Create(ctx context.Context, u auth.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, userDoc{
		UserType:    string(u.UserType),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Origin:      u.Origin,
		CompanyName: u.CompanyName,
		Password:    u.PasswordHash,
		CreatedAt:   u.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", auth.ErrUserAlreadyExists
		}
		return "", err
	}
	return hexID(res.InsertedID), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	var d userDoc
	if err := r.coll.FindOne(ctx, bson.M{"Email": email}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	return auth.User{
		ID:           d.ID.Hex(),
		UserType:     auth.UserType(d.UserType),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		DateOfBirth:  d.DateOfBirth,
		Gender:       d.Gender,
		Email:        d.Email,
		PhoneNumber:  d.PhoneNumber,
		Origin:       d.Origin,
		CompanyName:  d.CompanyName,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt.UTC(),
	}, nil
}
