package customers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateFields carries the mutable customer fields for a partial update.
// A nil field is left unchanged in the stored document.
type UpdateFields struct {
	Name    *string
	Address *string
}

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Insert(ctx context.Context, customer Customer) error
	Update(ctx context.Context, id string, fields UpdateFields) (Customer, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{coll: db.Collection("customers")}
}

func (r *repository) List(ctx context.Context) ([]Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var result []Customer
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Insert is a single conditional write: the document key is the customer's
// identifier, so a duplicate create surfaces as a unique-key violation
// instead of needing a racy existence pre-check.
func (r *repository) Insert(ctx context.Context, customer Customer) error {
	_, err := r.coll.InsertOne(ctx, customer)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCustomer
	}
	return err
}

// Update applies the present fields and returns the post-update document
// from the same round-trip, so the response always reflects stored state.
func (r *repository) Update(ctx context.Context, id string, fields UpdateFields) (Customer, error) {
	set := bson.D{}
	if fields.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *fields.Name})
	}
	if fields.Address != nil {
		set = append(set, bson.E{Key: "address", Value: *fields.Address})
	}

	var customer Customer

	if len(set) == 0 {
		// Nothing to change; still report whether the customer exists.
		err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&customer)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Customer{}, ErrCustomerNotFound
		}
		if err != nil {
			return Customer{}, err
		}
		return customer, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		return Customer{}, err
	}
	return customer, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrCustomerNotFound
	}
	return err
}
