package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

const collectionRooms = "rooms"

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

type mongoRoom struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	RoomNumber    string             `bson:"roomNumber"`
	Type          string             `bson:"type"`
	Description   string             `bson:"description"`
	PricePerNight float64            `bson:"pricePerNight"`
	MaxCapacity   int                `bson:"maxCapacity"`
	BedType       string             `bson:"bedType"`
	Size          int                `bson:"size"`
	Floor         int                `bson:"floor"`
	Amenities     []string           `bson:"amenities"`
	Images        []string           `bson:"images"`
	IsAvailable   bool               `bson:"isAvailable"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty"`
}

func toMongoRoom(r *domain.Room) mongoRoom {
	return mongoRoom{
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		MaxCapacity:   r.MaxCapacity,
		BedType:       r.BedType,
		Size:          r.Size,
		Floor:         r.Floor,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (m mongoRoom) toDomain() domain.Room {
	amenities, images := m.Amenities, m.Images
	if amenities == nil {
		amenities = []string{}
	}
	if images == nil {
		images = []string{}
	}
	return domain.Room{
		ID:            m.ID.Hex(),
		RoomNumber:    m.RoomNumber,
		Type:          m.Type,
		Description:   m.Description,
		PricePerNight: m.PricePerNight,
		MaxCapacity:   m.MaxCapacity,
		BedType:       m.BedType,
		Size:          m.Size,
		Floor:         m.Floor,
		Amenities:     amenities,
		Images:        images,
		IsAvailable:   m.IsAvailable,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "roomNumber", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	var docs []mongoRoom
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	rooms := make([]domain.Room, 0, len(docs))
	for _, d := range docs {
		rooms = append(rooms, d.toDomain())
	}
	return rooms, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *RoomRepository) FindByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	return r.findOne(ctx, bson.M{"roomNumber": roomNumber})
}

func (r *RoomRepository) findOne(ctx context.Context, filter bson.M) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoRoom
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	room := doc.toDomain()
	return &room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toMongoRoom(room))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	oid, err := primitive.ObjectIDFromHex(room.ID)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoRoom(room)
	doc.ID = oid
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// EnsureIndexes makes room numbers unique.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "roomNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
