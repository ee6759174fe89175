package database

import (
	"context"
	"errors"
	"fmt"

	"mingle/internal/apperrors"
	postEntity "mingle/internal/core/post"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionPosts = "posts"

// PostRepositoryMongo implements the post port against MongoDB. One document
// per aggregate; likes and comments are mutated with atomic array operators
// so concurrent writers never clobber each other.
type PostRepositoryMongo struct {
	collection *mongo.Collection
}

func NewPostRepositoryMongo(db *mongo.Database) *PostRepositoryMongo {
	return &PostRepositoryMongo{
		collection: db.Collection(collectionPosts),
	}
}

// EnsureIndexes creates the indexes the feed and author queries rely on.
func (repo *PostRepositoryMongo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "author_id", Value: 1}},
		},
	}

	_, err := repo.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (repo *PostRepositoryMongo) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	if _, err := repo.collection.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}
	return p, nil
}

func (repo *PostRepositoryMongo) FindByID(ctx context.Context, id string) (*postEntity.Post, error) {
	var p postEntity.Post
	err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFoundf("post %s", id)
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &p, nil
}

// FindAll returns every post in insertion order; ordering for display is the
// read model's concern.
func (repo *PostRepositoryMongo) FindAll(ctx context.Context) ([]*postEntity.Post, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*postEntity.Post
	for cursor.Next(ctx) {
		var p postEntity.Post
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

func (repo *PostRepositoryMongo) Delete(ctx context.Context, id string) error {
	res, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("post %s", id)
	}
	return nil
}

func (repo *PostRepositoryMongo) AddLike(ctx context.Context, postID, userID string) (*postEntity.Post, error) {
	return repo.findAndUpdate(ctx, postID, bson.M{
		"$addToSet": bson.M{"liked_by": userID},
	})
}

func (repo *PostRepositoryMongo) RemoveLike(ctx context.Context, postID, userID string) (*postEntity.Post, error) {
	return repo.findAndUpdate(ctx, postID, bson.M{
		"$pull": bson.M{"liked_by": userID},
	})
}

func (repo *PostRepositoryMongo) PushComment(ctx context.Context, postID string, c postEntity.Comment) (*postEntity.Post, error) {
	return repo.findAndUpdate(ctx, postID, bson.M{
		"$push": bson.M{"comments": c},
	})
}

// PullComment removes the comment matching both id and author. A live post
// with no matching comment is a successful no-op.
func (repo *PostRepositoryMongo) PullComment(ctx context.Context, postID, commentID, authorID string) error {
	res, err := repo.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{
		"$pull": bson.M{"comments": bson.M{"id": commentID, "author_id": authorID}},
	})
	if err != nil {
		return fmt.Errorf("failed to remove comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("post %s", postID)
	}
	return nil
}

// findAndUpdate applies an atomic update and decodes the resulting document,
// so callers see the post-image rather than a stale read.
func (repo *PostRepositoryMongo) findAndUpdate(ctx context.Context, postID string, update bson.M) (*postEntity.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p postEntity.Post
	err := repo.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFoundf("post %s", postID)
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return &p, nil
}
