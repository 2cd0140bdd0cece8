package forum

import (
	"context"
	"testing"
	"time"

	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/forum"
	"Backend-Sentinel/test"

	"github.com/stretchr/testify/assert"
)

// fakePostStore is an in-memory PostStore
type fakePostStore struct {
	posts []models.ForumPost
}

func (f *fakePostStore) Insert(ctx context.Context, post *models.ForumPost) error {
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostStore) All(ctx context.Context) ([]models.ForumPost, error) {
	out := make([]models.ForumPost, len(f.posts))
	copy(out, f.posts)
	return out, nil
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

func TestCreatePost(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Forum Create Tests")
	defer suiteResult.PrintSummary()

	ctx := context.Background()

	// Test post creation assigns key and timestamp
	t.Run("TestCreateAssignsKeyAndTimestamp", func(t *testing.T) {
		timer := test.NewTestTimer("Create Assigns Key And Timestamp")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Create Assigns Key And Timestamp",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Create Assigns Key And Timestamp", duration, 1*time.Millisecond)
		}()

		store := &fakePostStore{}
		service := forum.NewServiceWithStore(store)

		before := time.Now().UnixMilli()
		post := models.ForumPost{Author: "Somchai", Content: "Hello", StudentID: "uid-1"}
		err := service.CreatePost(ctx, &post)
		after := time.Now().UnixMilli()

		assert.NoError(t, err)
		assert.NotEmpty(t, post.ID)
		assert.GreaterOrEqual(t, post.Timestamp, before)
		assert.LessOrEqual(t, post.Timestamp, after)
		assert.Len(t, store.posts, 1)
	})

	// Test empty content is refused
	t.Run("TestEmptyContentRefused", func(t *testing.T) {
		timer := test.NewTestTimer("Empty Content Refused")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Empty Content Refused",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := &fakePostStore{}
		service := forum.NewServiceWithStore(store)

		err := service.CreatePost(ctx, &models.ForumPost{Content: ""})
		assert.Error(t, err)
		assert.Empty(t, store.posts)
	})

	// Test missing author defaults to Anonymous
	t.Run("TestAnonymousDefault", func(t *testing.T) {
		timer := test.NewTestTimer("Anonymous Default")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Anonymous Default",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := &fakePostStore{}
		service := forum.NewServiceWithStore(store)

		post := models.ForumPost{Content: "no name"}
		assert.NoError(t, service.CreatePost(ctx, &post))
		assert.Equal(t, "Anonymous", post.Author)
	})
}

func TestListPosts(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Forum Ordering Tests")
	defer suiteResult.PrintSummary()

	ctx := context.Background()

	// Test posts come back newest first regardless of store order
	t.Run("TestNewestFirst", func(t *testing.T) {
		timer := test.NewTestTimer("Newest First")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Newest First",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := &fakePostStore{posts: []models.ForumPost{
			{ID: "a", Content: "oldest", Timestamp: 1000},
			{ID: "c", Content: "newest", Timestamp: 3000},
			{ID: "b", Content: "middle", Timestamp: 2000},
		}}
		service := forum.NewServiceWithStore(store)

		posts, err := service.ListPosts(ctx)
		assert.NoError(t, err)
		assert.Len(t, posts, 3)
		assert.Equal(t, "c", posts[0].ID)
		assert.Equal(t, "b", posts[1].ID)
		assert.Equal(t, "a", posts[2].ID)
	})

	// Test the student filter accepts several keys and keeps the ordering
	t.Run("TestPostsByStudentMultipleKeys", func(t *testing.T) {
		timer := test.NewTestTimer("Posts By Student Multiple Keys")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Posts By Student Multiple Keys",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := &fakePostStore{posts: []models.ForumPost{
			{ID: "a", StudentID: "-NOldKey", Content: "before signup", Timestamp: 1000},
			{ID: "b", StudentID: "someone-else", Content: "noise", Timestamp: 1500},
			{ID: "c", StudentID: "uid-1", Content: "after signup", Timestamp: 2000},
		}}
		service := forum.NewServiceWithStore(store)

		posts, err := service.PostsByStudent(ctx, "-NOldKey", "uid-1")
		assert.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.Equal(t, "c", posts[0].ID)
		assert.Equal(t, "a", posts[1].ID)
	})
}
