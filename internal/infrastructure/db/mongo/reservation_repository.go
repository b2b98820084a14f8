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

const collectionReservations = "reservations"

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection(collectionReservations)}
}

type mongoReservation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"userId"`
	GuestName  string             `bson:"guestName"`
	RoomNumber int                `bson:"roomNumber"`
	CheckIn    time.Time          `bson:"checkIn"`
	CheckOut   time.Time          `bson:"checkOut"`
	Status     string             `bson:"status"`
	TotalPrice float64            `bson:"totalPrice"`
}

func toMongoReservation(r *domain.Reservation) mongoReservation {
	return mongoReservation{
		UserID:     r.UserID,
		GuestName:  r.GuestName,
		RoomNumber: r.RoomNumber,
		CheckIn:    r.CheckIn.Time,
		CheckOut:   r.CheckOut.Time,
		Status:     r.Status,
		TotalPrice: r.TotalPrice,
	}
}

func (m mongoReservation) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:         m.ID.Hex(),
		UserID:     m.UserID,
		GuestName:  m.GuestName,
		RoomNumber: m.RoomNumber,
		CheckIn:    domain.DateOf(m.CheckIn),
		CheckOut:   domain.DateOf(m.CheckOut),
		Status:     m.Status,
		TotalPrice: m.TotalPrice,
	}
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReservationRepository) FindByRoom(ctx context.Context, roomNumber int) ([]domain.Reservation, error) {
	return r.find(ctx, bson.M{"roomNumber": roomNumber})
}

func (r *ReservationRepository) find(ctx context.Context, filter bson.M) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "checkIn", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	var docs []mongoReservation
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}

	out := make([]domain.Reservation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoReservation
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	res := doc.toDomain()
	return &res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	inserted, err := r.col.InsertOne(ctx, toMongoReservation(res))
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	created := *res
	if oid, ok := inserted.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	oid, err := primitive.ObjectIDFromHex(res.ID)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoReservation(res)
	doc.ID = oid
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup index used by the overlap check.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "roomNumber", Value: 1}, {Key: "checkIn", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	return err
}
