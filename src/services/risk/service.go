package risk

import (
	"context"
	"log"
	"sort"

	"Backend-Sentinel/src/database"
	"Backend-Sentinel/src/models"
	"Backend-Sentinel/src/services/forum"
	"Backend-Sentinel/src/services/profiles"

	"github.com/redis/go-redis/v9"
)

const heuristicBoardKey = "risk:heuristic"

type Service struct {
	client *Client
	posts  *forum.Service
}

func NewService() *Service {
	return &Service{client: NewClient(), posts: forum.NewService()}
}

// NewServiceWithClient ใช้ใน test
func NewServiceWithClient(client *Client) *Service {
	return &Service{client: client, posts: forum.NewService()}
}

// NewServiceWithDeps ใช้ใน test ที่ต้อง fake forum store ด้วย
func NewServiceWithDeps(client *Client, posts *forum.Service) *Service {
	return &Service{client: client, posts: posts}
}

// Assess wraps PredictRisk with the degradation policy: on any transport
// error or non-2xx response the caller gets {0, []} instead of an error.
// The dashboard renders degraded, never broken.
func (s *Service) Assess(ctx context.Context, p *models.StudentProfile, sentiment int) *models.RiskAssessment {
	out, err := s.client.PredictRisk(ctx, p, sentiment)
	if err != nil {
		log.Println("⚠️ Risk API unavailable, falling back to zero risk:", err)
		return &models.RiskAssessment{RiskScore: 0, Explanation: []models.RiskFactor{}}
	}
	return out
}

// AssessStudent computes the sentiment from the student's own forum posts
// and fetches the authoritative assessment. Posts are written under the
// session uid, while a fallback-resolved profile carries the old record key,
// so the lookup covers both when the caller knows the uid. The counselor
// deep dive passes uid="" and filters by the record key alone.
func (s *Service) AssessStudent(ctx context.Context, p *models.StudentProfile, uid string) (*models.RiskAssessment, int) {
	keys := []string{p.Key}
	if uid != "" && uid != p.Key {
		keys = append(keys, uid)
	}

	posts, err := s.posts.PostsByStudent(ctx, keys...)
	if err != nil {
		log.Println("⚠️ Forum lookup failed, sentiment defaults to 0:", err)
		posts = nil
	}
	sentiment := AnalyzeSentiment(posts)
	return s.Assess(ctx, p, sentiment), sentiment
}

// RankStudents builds the counselor list ordered by the local heuristic,
// highest first. No risk API call happens here; that cost is paid lazily
// when a detail view opens.
func RankStudents(ctx context.Context) ([]models.RankedStudent, error) {
	docs, err := profiles.ListRawStudents(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]models.RankedStudent, 0, len(docs))
	for _, doc := range docs {
		key, _ := doc["_id"].(string)
		p := profiles.ResolveProfile(key, doc)

		ranked = append(ranked, models.RankedStudent{
			Key:            key,
			Name:           p.Name,
			Course:         p.Course,
			HeuristicScore: HeuristicScore(p.GPA, p.Attendance),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HeuristicScore > ranked[j].HeuristicScore
	})

	cacheHeuristicBoard(ranked)
	return ranked, nil
}

// cacheHeuristicBoard mirrors the current ordering into a Redis ZSET so ops
// can inspect the board without hitting Mongo. Best effort only.
func cacheHeuristicBoard(ranked []models.RankedStudent) {
	client := database.RedisClient
	if client == nil {
		return
	}

	members := make([]redis.Z, 0, len(ranked))
	for _, r := range ranked {
		members = append(members, redis.Z{Score: float64(r.HeuristicScore), Member: r.Key})
	}
	if len(members) == 0 {
		return
	}
	if err := client.ZAdd(database.RedisCtx, heuristicBoardKey, members...).Err(); err != nil {
		log.Println("⚠️ Failed to cache heuristic board:", err)
	}
}
