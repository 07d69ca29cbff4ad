package storage

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a mongo database handle. The handle is
// injected; nothing in this package holds package-level connection state.
type Mongo struct {
	db  *mongo.Database
	log *logrus.Logger
}

var _ Store = (*Mongo)(nil)

func NewMongo(db *mongo.Database, log *logrus.Logger) *Mongo {
	return &Mongo{db: db, log: log}
}

// setDoc turns a partial-field map into a $set document. Callers must guard
// against empty maps; Mongo rejects an empty $set.
func setDoc(fields Fields) bson.M {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	return bson.M{"$set": set}
}

func after() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

func (m *Mongo) deleteByID(ctx context.Context, coll, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := m.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", coll, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) insert(ctx context.Context, coll string, doc any) error {
	if _, err := m.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert into %s: %w", coll, err)
	}
	return nil
}
