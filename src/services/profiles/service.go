package profiles

import (
	"context"
	"errors"
	"strings"

	"Backend-Sentinel/src/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrProfileNotFound: neither the session key nor the email fallback found a
// record. The dashboard renders this as an explicit state, never a crash.
var ErrProfileNotFound = errors.New("profile not found")

// RecordLookup abstracts the keyed reads the resolver performs.
type RecordLookup interface {
	// ByKey returns the record at key, nil when absent.
	ByKey(ctx context.Context, key string) (bson.M, error)
	// FirstByEmail returns the first record whose emailid equals email,
	// nil when absent. Order among duplicates is unspecified.
	FirstByEmail(ctx context.Context, email string) (bson.M, error)
}

type Resolver struct {
	lookup RecordLookup
}

func NewResolver() *Resolver {
	return &Resolver{lookup: &mongoLookup{}}
}

// NewResolverWithLookup ใช้ใน test
func NewResolverWithLookup(lookup RecordLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve loads the profile for a signed-in student. The primary read is by
// session key; when the record was never migrated (partial reconciliation,
// direct seeding) a one-shot fallback searches by email. The fallback is
// read-only per render and does not heal the data.
func (r *Resolver) Resolve(ctx context.Context, uid, email string) (*models.StudentProfile, error) {
	doc, err := r.lookup.ByKey(ctx, uid)
	if err != nil {
		return nil, err
	}

	key := uid
	if doc == nil && email != "" {
		doc, err = r.lookup.FirstByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
		if err != nil {
			return nil, err
		}
		if doc != nil {
			if k, ok := doc["_id"].(string); ok {
				key = k
			}
		}
	}

	if doc == nil {
		return nil, ErrProfileNotFound
	}

	profile := ResolveProfile(key, doc)
	return profile, nil
}

// ResolveProfile applies the alias table to a raw record. Pure function so
// the alias policy is testable without a store.
func ResolveProfile(key string, doc bson.M) *models.StudentProfile {
	uid, _ := doc["uid"].(string)

	return &models.StudentProfile{
		Key:          key,
		UID:          uid,
		StudentID:    resolveString(doc, studentIDAliases),
		Name:         resolveString(doc, nameAliases),
		Email:        resolveString(doc, emailAliases),
		Phone:        resolveString(doc, phoneAliases),
		Age:          resolveString(doc, []string{"age"}),
		Gender:       resolveString(doc, []string{"gender"}),
		FatherName:   resolveString(doc, fatherNameAliases),
		MotherName:   resolveString(doc, motherNameAliases),
		ParentMobile: resolveString(doc, parentMobileAliases),
		Address:      resolveString(doc, []string{"address"}),
		Course:       resolveString(doc, courseAliases),
		GradYear:     resolveString(doc, gradYearAliases),
		GPA:          asFloat(doc["gpa"]),
		Attendance:   asFloat(doc["attendance_percentage"]),
		PastFailures: asInt(doc["past_failures"]),
		FeesDue:      resolveFees(doc),
	}
}

// resolveFees normalizes the legacy fees_due strings. Absent defaults to
// "no", which renders as Paid.
func resolveFees(doc bson.M) string {
	raw := "no"
	if v, ok := doc["fees_due"]; ok && v != nil {
		raw = strings.ToLower(stringify(v))
	}
	if raw == "no" || raw == "paid" {
		return "Paid"
	}
	return "Due"
}
