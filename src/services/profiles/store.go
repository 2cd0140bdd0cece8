package profiles

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"Backend-Sentinel/src/database"
	"Backend-Sentinel/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoLookup struct{}

func (m *mongoLookup) ByKey(ctx context.Context, key string) (bson.M, error) {
	var doc bson.M
	err := database.StudentCollection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *mongoLookup) FirstByEmail(ctx context.Context, email string) (bson.M, error) {
	var doc bson.M
	err := database.StudentCollection.FindOne(ctx, bson.M{"emailid": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// editableFields: the subset a student may patch from the profile view.
// Everything else is admin data.
var editableFields = map[string]bool{
	"emailid":              true,
	"mobileno":             true,
	"age":                  true,
	"parent_mobile_number": true,
}

// PatchProfile applies a field-granular update to the record at uid.
// Last-write-wins; concurrent editors race at this granularity.
func PatchProfile(ctx context.Context, uid string, fields map[string]string) error {
	set := bson.M{}
	for k, v := range fields {
		if editableFields[k] {
			set[k] = v
		}
	}
	if len(set) == 0 {
		return errors.New("no editable fields in request")
	}

	res, err := database.StudentCollection.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// GenerateStudentID สร้างรหัสนิสิตรูปแบบ STU_<ปี>_<0..999>
// Collisions are not checked.
func GenerateStudentID() string {
	return fmt.Sprintf("STU_%d_%d", time.Now().Year(), rand.Intn(1000))
}

// Enroll writes a brand new pre-registration. The student can sign up and
// claim it afterwards via the reconciliation flow.
func Enroll(ctx context.Context, req models.EnrollStudentRequest) (string, error) {
	key := uuid.NewString() // push-generated key

	doc := bson.M{
		"_id":                   key,
		"name":                  req.Name,
		"emailid":               req.Email,
		"mobileno":              req.Mobile,
		"age":                   req.Age,
		"gender":                req.Gender,
		"course_enrollment":     req.Course,
		"year_of_graduation":    req.GradYear,
		"gpa":                   req.GPA,
		"father_name":           req.FatherName,
		"mother_name":           req.MotherName,
		"parent_mobile_number":  req.ParentMobile,
		"address":               req.Address,
		"student_id":            GenerateStudentID(),
		"fees_due":              "Yes",
		"attendance_percentage": 0,
		"past_failures":         0,
	}

	if _, err := database.StudentCollection.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return key, nil
}

// ListRawStudents returns every student record. Documents without a name
// field are skipped: keys share a namespace with system nodes in seeded
// exports and non-student junk must not reach the counselor list.
func ListRawStudents(ctx context.Context) ([]bson.M, error) {
	cur, err := database.StudentCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bson.M
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		if name, ok := doc["name"].(string); !ok || name == "" {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, cur.Err()
}
