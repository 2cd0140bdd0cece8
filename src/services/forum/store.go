package forum

import (
	"context"

	"Backend-Sentinel/src/database"
	"Backend-Sentinel/src/models"

	"go.mongodb.org/mongo-driver/bson"
)

// mongoPostStore implements PostStore on the shared forum collection.
type mongoPostStore struct{}

func (m *mongoPostStore) Insert(ctx context.Context, post *models.ForumPost) error {
	_, err := database.ForumCollection.InsertOne(ctx, post)
	return err
}

func (m *mongoPostStore) All(ctx context.Context) ([]models.ForumPost, error) {
	return m.find(ctx, bson.M{})
}

func (m *mongoPostStore) ByStudentIDs(ctx context.Context, ids []string) ([]models.ForumPost, error) {
	return m.find(ctx, bson.M{"studentId": bson.M{"$in": ids}})
}

func (m *mongoPostStore) find(ctx context.Context, filter bson.M) ([]models.ForumPost, error) {
	cur, err := database.ForumCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.ForumPost
	for cur.Next(ctx) {
		var p models.ForumPost
		if err := cur.Decode(&p); err != nil {
			continue
		}
		posts = append(posts, p)
	}
	return posts, cur.Err()
}
