package risk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/forum"
	"Backend-Sentinel/src/services/risk"
	"Backend-Sentinel/test"

	"github.com/stretchr/testify/assert"
)

// fakePostStore mirrors the forum store for sentiment lookups
type fakePostStore struct {
	posts []models.ForumPost
}

func (f *fakePostStore) Insert(ctx context.Context, post *models.ForumPost) error {
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostStore) All(ctx context.Context) ([]models.ForumPost, error) {
	return f.posts, nil
}

func (f *fakePostStore) ByStudentIDs(ctx context.Context, ids []string) ([]models.ForumPost, error) {
	var out []models.ForumPost
	for _, p := range f.posts {
		for _, id := range ids {
			if p.StudentID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

// sentimentEchoServer reports back the sentiment_score it received so the
// test can see which posts fed the signal.
func sentimentEchoServer(t *testing.T, got *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		*got = int(body["sentiment_score"].(float64))
		w.Write([]byte(`{"risk_score": 50, "explanation": []}`))
	}))
}

func TestAssessStudentSentimentKeys(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Assess Sentiment Key Tests")
	defer suiteResult.PrintSummary()

	ctx := context.Background()

	// Test posts written under the session uid count even when the profile
	// came back through the email fallback with the old record key
	t.Run("TestFallbackProfileStillCountsOwnPosts", func(t *testing.T) {
		timer := test.NewTestTimer("Fallback Profile Still Counts Own Posts")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Fallback Profile Still Counts Own Posts",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := &fakePostStore{posts: []models.ForumPost{
			{ID: "p1", StudentID: "uid-1", Content: "I am stressed and might quit", Timestamp: 1000},
		}}

		var sentSentiment int
		srv := sentimentEchoServer(t, &sentSentiment)
		defer srv.Close()

		service := risk.NewServiceWithDeps(risk.NewClientWithBase(srv.URL), forum.NewServiceWithStore(store))

		// Unmigrated record: profile key is the old pre-registration key
		profile := &models.StudentProfile{Key: "5", Name: "Somchai"}
		_, sentiment := service.AssessStudent(ctx, profile, "uid-1")

		assert.Equal(t, -2, sentiment)
		assert.Equal(t, -2, sentSentiment)
	})

	// Test the migrated case: key equals uid, single filter suffices
	t.Run("TestMigratedProfile", func(t *testing.T) {
		timer := test.NewTestTimer("Migrated Profile")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Migrated Profile",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := &fakePostStore{posts: []models.ForumPost{
			{ID: "p1", StudentID: "uid-2", Content: "this is hard", Timestamp: 1000},
		}}

		var sentSentiment int
		srv := sentimentEchoServer(t, &sentSentiment)
		defer srv.Close()

		service := risk.NewServiceWithDeps(risk.NewClientWithBase(srv.URL), forum.NewServiceWithStore(store))

		profile := &models.StudentProfile{Key: "uid-2", Name: "Somying"}
		_, sentiment := service.AssessStudent(ctx, profile, "uid-2")

		assert.Equal(t, -1, sentiment)
		assert.Equal(t, -1, sentSentiment)
	})

	// Test the counselor deep dive filters by the record key alone
	t.Run("TestCounselorFiltersByRecordKey", func(t *testing.T) {
		timer := test.NewTestTimer("Counselor Filters By Record Key")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Counselor Filters By Record Key",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := &fakePostStore{posts: []models.ForumPost{
			{ID: "p1", StudentID: "uid-3", Content: "so much trouble and worry", Timestamp: 1000},
			{ID: "p2", StudentID: "other-student", Content: "I hate this", Timestamp: 2000},
		}}

		var sentSentiment int
		srv := sentimentEchoServer(t, &sentSentiment)
		defer srv.Close()

		service := risk.NewServiceWithDeps(risk.NewClientWithBase(srv.URL), forum.NewServiceWithStore(store))

		profile := &models.StudentProfile{Key: "uid-3", Name: "Somsak"}
		_, sentiment := service.AssessStudent(ctx, profile, "")

		assert.Equal(t, -2, sentiment)
		assert.Equal(t, -2, sentSentiment)
	})
}
