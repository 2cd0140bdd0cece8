package forum

import (
	"context"
	"errors"
	"sort"
	"time"

	"Backend-Sentinel/src/models"

	"github.com/google/uuid"
)

// PostStore abstracts the forum collection reads and writes.
type PostStore interface {
	Insert(ctx context.Context, post *models.ForumPost) error
	All(ctx context.Context) ([]models.ForumPost, error)
	ByStudentIDs(ctx context.Context, ids []string) ([]models.ForumPost, error)
}

type Service struct {
	store PostStore
}

func NewService() *Service {
	return &Service{store: &mongoPostStore{}}
}

// NewServiceWithStore ใช้ใน test
func NewServiceWithStore(store PostStore) *Service {
	return &Service{store: store}
}

// CreatePost appends a post. The forum is append-only: no edit, no delete.
func (s *Service) CreatePost(ctx context.Context, post *models.ForumPost) error {
	if post.Content == "" {
		return errors.New("post content is empty")
	}
	if post.Author == "" {
		post.Author = "Anonymous"
	}

	post.ID = uuid.NewString() // push-generated key
	if post.Timestamp == 0 {
		post.Timestamp = time.Now().UnixMilli()
	}

	return s.store.Insert(ctx, post)
}

// ListPosts returns all posts, newest first.
func (s *Service) ListPosts(ctx context.Context) ([]models.ForumPost, error) {
	posts, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

// PostsByStudent returns the posts authored under any of the given keys,
// newest first. Feeds the sentiment signal; posts are written under the
// session uid, but fallback-resolved profiles carry the old record key, so
// callers pass every key the student may have posted under.
func (s *Service) PostsByStudent(ctx context.Context, ids ...string) ([]models.ForumPost, error) {
	posts, err := s.store.ByStudentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

func sortNewestFirst(posts []models.ForumPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp > posts[j].Timestamp
	})
}
