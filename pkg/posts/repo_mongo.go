package posts

import (
	"context"
	"fmt"
	"strconv"

	"advofeed/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostsRepoMongo struct {
	collection common.CollectionHelper
}

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

func NewPostsRepoMongo(db *mongo.Database, collectionName string) *PostsRepoMongo {
	return &PostsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection(collectionName)}}
}

func (r *PostsRepoMongo) GetAll(ctx context.Context) ([]*Post, error) {
	return r.getByField(ctx, bson.M{})
}

func (r *PostsRepoMongo) GetByChannel(ctx context.Context, channel Channel) ([]*Post, error) {
	if channel == AllChannels {
		return r.getByField(ctx, bson.M{})
	}

	return r.getByField(ctx, bson.M{"channel": channel})
}

func (r *PostsRepoMongo) GetByAuthorID(ctx context.Context, authorID interface{}) ([]*Post, error) {
	return r.getByField(ctx, bson.M{"authorID": authorID})
}

func (r *PostsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Post, error) {
	res := r.collection.FindOne(ctx, bson.M{"_id": id})

	post := &Post{}
	err := res.Decode(post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *PostsRepoMongo) Add(ctx context.Context, p *Post) (interface{}, error) {
	if p.Likes == nil {
		p.Likes = map[string]bool{}
	}

	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return 0, err
	}

	return res.GetInsertedID(), nil
}

func (r *PostsRepoMongo) Delete(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	if res.GetDeletedCount() == 0 {
		return false, nil
	}

	return true, nil
}

func (r *PostsRepoMongo) LikeByUser(ctx context.Context, postID interface{}, userID int64) (*Post, error) {
	return r.updateLike(ctx, postID, userID, true)
}

func (r *PostsRepoMongo) UnlikeByUser(ctx context.Context, postID interface{}, userID int64) (*Post, error) {
	return r.updateLike(ctx, postID, userID, false)
}

// Share bumps the share counter and returns the post as it is after the bump.
func (r *PostsRepoMongo) Share(ctx context.Context, postID interface{}) (*Post, error) {
	res := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "shares", Value: 1}}},
		})

	post := &Post{}
	err := res.Decode(post)
	if err != nil {
		return nil, err
	}

	post.Shares++
	return post, nil
}

func (r *PostsRepoMongo) IncCommentCount(ctx context.Context, postID interface{}, delta int64) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "commentCount", Value: delta}}},
		})
	if err != nil {
		return err
	}

	if res.GetModifiedCount() == 0 {
		return fmt.Errorf("can't update post")
	}

	return nil
}

func (r *PostsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}

func (r *PostsRepoMongo) updateLike(ctx context.Context, postID interface{}, userID int64, liked bool) (*Post, error) {
	key := "likes." + strconv.FormatInt(userID, 10)

	var updateRes common.UpdateResultHelper
	var err error
	if liked {
		updateRes, err = r.collection.UpdateOne(ctx, bson.M{"_id": postID},
			bson.D{
				{Key: "$set", Value: bson.D{{Key: key, Value: true}}},
			})
	} else {
		updateRes, err = r.collection.UpdateOne(ctx, bson.M{"_id": postID},
			bson.D{
				{Key: "$unset", Value: bson.D{{Key: key, Value: ""}}},
			})
	}
	if err != nil {
		return nil, err
	}

	if updateRes.GetModifiedCount() == 0 {
		return nil, fmt.Errorf("can't update post")
	}

	res := r.collection.FindOne(ctx, bson.M{"_id": postID})
	p := &Post{}
	err = res.Decode(p)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *PostsRepoMongo) getByField(ctx context.Context, filter bson.M) ([]*Post, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var posts []*Post
	err = cur.All(ctx, &posts)
	if err != nil {
		return nil, err
	}

	return posts, nil
}
