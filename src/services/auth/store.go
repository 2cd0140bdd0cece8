package auth

import (
	"context"
	"log"

	"Backend-Sentinel/src/database"
	"Backend-Sentinel/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStore implements RecordStore on the shared Mongo collections.
type mongoStore struct{}

func collectionForRole(role string) *mongo.Collection {
	if role == models.RoleCounselor {
		return database.CounselorCollection
	}
	return database.StudentCollection
}

func (m *mongoStore) FindPreRegistration(ctx context.Context, role, email string) (string, bson.M, error) {
	col := collectionForRole(role)

	// Seeded data only ever indexes pre-registrations by "emailid".
	// Multiple matches would be a data integrity violation (emails are
	// unique per record); the first match wins.
	var record bson.M
	err := col.FindOne(ctx, bson.M{"emailid": email}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return "", nil, ErrNotPreRegistered
	}
	if err != nil {
		return "", nil, err
	}

	key, _ := record["_id"].(string)
	return key, record, nil
}

func (m *mongoStore) FindCredential(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *mongoStore) CreateCredential(ctx context.Context, user *models.User) error {
	_, err := database.UserCollection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrCredentialConflict
	}
	return err
}

// MigrateRecord moves the pre-registration to the session key. Write and
// delete run in one transaction so a crash can never leave two live copies
// matching the same email. The write is an upserted replace, so when the
// old key already equals the uid the migration is a plain overwrite and the
// delete is skipped: keys share a namespace and self-deletion of the
// just-written record must not happen.
func (m *mongoStore) MigrateRecord(ctx context.Context, role, oldKey, uid string, record bson.M) error {
	col := collectionForRole(role)

	doc := bson.M{"_id": uid}
	for k, v := range record {
		doc[k] = v
	}

	session, err := database.Client().StartSession()
	if err != nil {
		// Standalone Mongo has no transactions; fall back to sequential
		// write-then-delete.
		log.Println("⚠️ No session support, migrating without transaction:", err)
		return m.migrateSequential(ctx, col, oldKey, uid, doc)
	}
	defer session.EndSession(ctx)

	replaceOpts := options.Replace().SetUpsert(true)
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := col.ReplaceOne(sc, bson.M{"_id": uid}, doc, replaceOpts); err != nil {
			return nil, err
		}
		if oldKey != uid {
			if _, err := col.DeleteOne(sc, bson.M{"_id": oldKey}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func (m *mongoStore) migrateSequential(ctx context.Context, col *mongo.Collection, oldKey, uid string, doc bson.M) error {
	if _, err := col.ReplaceOne(ctx, bson.M{"_id": uid}, doc, options.Replace().SetUpsert(true)); err != nil {
		return err
	}
	if oldKey != uid {
		if _, err := col.DeleteOne(ctx, bson.M{"_id": oldKey}); err != nil {
			return err
		}
	}
	return nil
}
