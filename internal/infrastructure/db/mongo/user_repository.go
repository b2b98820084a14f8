package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository reads the hotel user directory. Password hashes stored in the
// collection are never decoded.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	FirstName   string             `bson:"firstName"`
	LastName    string             `bson:"lastName"`
	PhoneNumber string             `bson:"phoneNumber"`
	Roles       []string           `bson:"roles"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
}

func (m mongoUser) toDomain() domain.DirectoryUser {
	roles := make([]domain.Role, 0, len(m.Roles))
	for _, r := range m.Roles {
		if role, err := domain.ParseRole(strings.TrimPrefix(strings.ToUpper(r), "ROLE_")); err == nil {
			roles = append(roles, role)
		}
	}
	return domain.DirectoryUser{
		ID:          m.ID.Hex(),
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		PhoneNumber: m.PhoneNumber,
		Roles:       roles,
		CreatedAt:   m.CreatedAt,
	}
}

// FindByRole matches the role case-insensitively; the directory stores both
// "employee" and "EMPLOYEE".
func (r *UserRepository) FindByRole(ctx context.Context, role domain.Role) ([]domain.DirectoryUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"roles": bson.M{"$in": []string{
		string(role),
		strings.ToUpper(string(role)),
		"ROLE_" + strings.ToUpper(string(role)),
	}}}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.DirectoryUser, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}
