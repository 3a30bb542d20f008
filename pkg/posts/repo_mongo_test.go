package posts

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"advofeed/pkg/common"

	gomock "github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type getByFieldCase struct {
	name    string
	cond    bson.M
	findErr error
	allErr  error
	f       func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error)
}

var authorID = int64(25)

var getByFieldCases = []getByFieldCase{
	{
		name: "GetAllHappyCase",
		cond: bson.M{},
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetAll(ctx)
		},
	},
	{
		name: "GetByChannelHappyCase",
		cond: bson.M{"channel": Engineering},
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetByChannel(ctx, Engineering)
		},
	},
	{
		name: "GetByChannelAllIsUnfiltered",
		cond: bson.M{},
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetByChannel(ctx, AllChannels)
		},
	},
	{
		name: "GetByAuthorIDHappyCase",
		cond: bson.M{"authorID": authorID},
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetByAuthorID(ctx, authorID)
		},
	},
	{
		name:    "FindErrorExpected",
		cond:    bson.M{},
		findErr: errors.New("error while calling find"),
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetAll(ctx)
		},
	},
	{
		name:   "CursorErrorExpected",
		cond:   bson.M{},
		allErr: errors.New("cursor error"),
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetAll(ctx)
		},
	},
}

func TestGetByField(t *testing.T) {
	for i, c := range getByFieldCases {
		ctrl := gomock.NewController(t)
		mockCollection := common.NewMockCollectionHelper(ctrl)
		mockCursor := common.NewMockCursorHelper(ctrl)
		repo := &PostsRepoMongo{collection: mockCollection}

		ctx := context.Background()

		expectedPosts := []*Post{
			{ID: primitive.NewObjectID(), AuthorID: authorID, Channel: Engineering, Content: "shipping week notes", Created: time.Now(), Likes: map[string]bool{}, CommentCount: 2, Shares: 1},
			{ID: primitive.NewObjectID(), AuthorID: authorID, Channel: Engineering, Content: "conference recap", Images: []string{"https://cdn.example.com/recap.png"}, Created: time.Now(), Likes: map[string]bool{"3": true}},
		}

		if c.findErr != nil {
			mockCollection.EXPECT().Find(ctx, gomock.Eq(c.cond)).Return(mockCursor, c.findErr)
		} else {
			mockCollection.EXPECT().Find(ctx, gomock.Eq(c.cond)).Return(mockCursor, nil)
			mockCursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&expectedPosts)).
				SetArg(1, expectedPosts).Return(c.allErr)
			mockCursor.EXPECT().Close(ctx).Return(nil)
		}

		res, err := c.f(ctx, repo)

		if c.findErr != nil {
			if c.findErr != err {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.findErr, err)
			}
		} else if c.allErr != nil {
			if c.allErr != err {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.allErr, err)
			}
		} else if !reflect.DeepEqual(res, expectedPosts) {
			t.Errorf("test #%d %s fail, expected: %v, but was: %v", i, c.name, expectedPosts, res)
		}
	}
}

type likeCase struct {
	name          string
	update        bson.D
	react         func(repo *PostsRepoMongo, ctx context.Context, postID interface{}, userID int64) (*Post, error)
	expectedLikes map[string]bool
	modifiedCount int64
	updateOneErr  error
	decodeErr     error
}

var userID = int64(3)
var userKey = "likes." + strconv.FormatInt(userID, 10)

var likeCases = []likeCase{
	{
		name:   "LikeHappyCase",
		update: bson.D{{Key: "$set", Value: bson.D{{Key: userKey, Value: true}}}},
		react: func(repo *PostsRepoMongo, ctx context.Context, postID interface{}, userID int64) (*Post, error) {
			return repo.LikeByUser(ctx, postID, userID)
		},
		expectedLikes: map[string]bool{strconv.FormatInt(userID, 10): true},
		modifiedCount: 1,
	},
	{
		name:   "UnlikeHappyCase",
		update: bson.D{{Key: "$unset", Value: bson.D{{Key: userKey, Value: ""}}}},
		react: func(repo *PostsRepoMongo, ctx context.Context, postID interface{}, userID int64) (*Post, error) {
			return repo.UnlikeByUser(ctx, postID, userID)
		},
		expectedLikes: map[string]bool{},
		modifiedCount: 1,
	},
	{
		name:   "UpdateOneErrorExpected",
		update: bson.D{{Key: "$set", Value: bson.D{{Key: userKey, Value: true}}}},
		react: func(repo *PostsRepoMongo, ctx context.Context, postID interface{}, userID int64) (*Post, error) {
			return repo.LikeByUser(ctx, postID, userID)
		},
		updateOneErr: errors.New("error while calling collection.updateOne"),
	},
	{
		name:   "NothingModifiedExpected",
		update: bson.D{{Key: "$set", Value: bson.D{{Key: userKey, Value: true}}}},
		react: func(repo *PostsRepoMongo, ctx context.Context, postID interface{}, userID int64) (*Post, error) {
			return repo.LikeByUser(ctx, postID, userID)
		},
		modifiedCount: 0,
	},
	{
		name:   "DecodeErrorExpected",
		update: bson.D{{Key: "$set", Value: bson.D{{Key: userKey, Value: true}}}},
		react: func(repo *PostsRepoMongo, ctx context.Context, postID interface{}, userID int64) (*Post, error) {
			return repo.LikeByUser(ctx, postID, userID)
		},
		modifiedCount: 1,
		decodeErr:     errors.New("decode error"),
	},
}

func TestLikes(t *testing.T) {
	for i, c := range likeCases {
		ctrl := gomock.NewController(t)
		mockCollection := common.NewMockCollectionHelper(ctrl)
		mockFindOneResult := common.NewMockSingleResultHelper(ctrl)
		mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

		repo := &PostsRepoMongo{collection: mockCollection}
		ctx := context.Background()

		postID := primitive.NewObjectID()
		bsonM := bson.M{"_id": postID}

		mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(bsonM), gomock.Eq(c.update)).
			Return(mockUpdateResult, c.updateOneErr)

		if c.updateOneErr == nil {
			mockUpdateResult.EXPECT().GetModifiedCount().Return(c.modifiedCount)
		}

		if c.updateOneErr == nil && c.modifiedCount > 0 {
			expectedPost := &Post{ID: postID, Likes: c.expectedLikes}
			mockCollection.EXPECT().FindOne(ctx, gomock.Eq(bsonM)).Return(mockFindOneResult)
			mockFindOneResult.EXPECT().Decode(gomock.AssignableToTypeOf(expectedPost)).
				SetArg(0, *expectedPost).Return(c.decodeErr)
		}

		res, err := c.react(repo, ctx, postID, userID)

		if c.updateOneErr != nil || c.decodeErr != nil || c.modifiedCount == 0 {
			if err == nil {
				t.Errorf("test #%d %s fail, expected error but was nil", i, c.name)
			}
		} else if !reflect.DeepEqual(res.Likes, c.expectedLikes) {
			t.Errorf("test #%d %s fail, expected: %v, but was: %v", i, c.name, c.expectedLikes, res.Likes)
		}
	}
}

func TestShare(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockSingleResult := common.NewMockSingleResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	postID := primitive.NewObjectID()
	bsonM := bson.M{"_id": postID}
	bsonD := bson.D{{Key: "$inc", Value: bson.D{{Key: "shares", Value: 1}}}}

	mockCollection.EXPECT().FindOneAndUpdate(ctx, gomock.Eq(bsonM), gomock.Eq(bsonD)).
		Return(mockSingleResult)

	stored := &Post{ID: postID, AuthorID: authorID, Channel: Product, Content: "launch day", Created: time.Now(), Likes: map[string]bool{}, Shares: 4}
	mockSingleResult.EXPECT().Decode(gomock.AssignableToTypeOf(stored)).
		SetArg(0, *stored).Return(nil)

	res, err := repo.Share(ctx, postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if res.Shares != 5 {
		t.Errorf("test fail, expected shares 5 but was %v", res.Shares)
	}
}

func TestIncCommentCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	postID := primitive.NewObjectID()
	bsonM := bson.M{"_id": postID}
	bsonD := bson.D{{Key: "$inc", Value: bson.D{{Key: "commentCount", Value: int64(1)}}}}

	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(bsonM), gomock.Eq(bsonD)).
		Return(mockUpdateResult, nil)
	mockUpdateResult.EXPECT().GetModifiedCount().Return(int64(1))

	if err := repo.IncCommentCount(ctx, postID, 1); err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	// nothing matched
	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(bsonM), gomock.Eq(bsonD)).
		Return(mockUpdateResult, nil)
	mockUpdateResult.EXPECT().GetModifiedCount().Return(int64(0))

	if err := repo.IncCommentCount(ctx, postID, 1); err == nil {
		t.Fatal("expected error but was nil")
	}
}

func TestGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockSingleResult := common.NewMockSingleResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()
	mockCollection.EXPECT().FindOne(ctx, gomock.Eq(bson.M{"_id": id})).
		Return(mockSingleResult)

	expectedPost := &Post{ID: id, AuthorID: authorID, Channel: CompanyNews, Content: "quarterly update", Created: time.Now(), Likes: map[string]bool{}}
	mockSingleResult.EXPECT().Decode(gomock.AssignableToTypeOf(expectedPost)).
		SetArg(0, *expectedPost).Return(nil)

	res, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if !reflect.DeepEqual(res, expectedPost) {
		t.Errorf("test fail, expected: %v, but was: %v", expectedPost, res)
	}
}

func TestAddPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockInsertOneResult := common.NewMockInsertOneResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	expectedInsertID := primitive.NewObjectID()
	post := &Post{AuthorID: authorID, Channel: Culture, Content: "team offsite photos"}

	mockCollection.EXPECT().InsertOne(ctx, gomock.AssignableToTypeOf(post)).
		Return(mockInsertOneResult, nil)
	mockInsertOneResult.EXPECT().GetInsertedID().Return(expectedInsertID)

	res, err := repo.Add(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if !reflect.DeepEqual(res, expectedInsertID) {
		t.Errorf("test fail, expected: %v, but was: %v", expectedInsertID, res)
	}

	if post.Likes == nil {
		t.Error("test fail, added post should get an empty likes map")
	}
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockDeleteResult := common.NewMockDeleteResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()
	mockCollection.EXPECT().DeleteOne(ctx, gomock.AssignableToTypeOf(bson.M{"_id": id})).
		Return(mockDeleteResult, nil)
	mockDeleteResult.EXPECT().GetDeletedCount().Return(int64(1))

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if !deleted {
		t.Error("test fail, expected true but was false")
	}
}

func TestParseID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	repo := &PostsRepoMongo{collection: mockCollection}

	id := primitive.NewObjectID()
	parsed, err := repo.ParseID(id.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	objID, ok := parsed.(primitive.ObjectID)
	if !ok {
		t.Fatalf("unexpected type: %t", parsed)
	}

	if objID.Hex() != id.Hex() {
		t.Fatalf("values not equal: %v, %v", objID.Hex(), id.Hex())
	}

	if _, err = repo.ParseID("not-an-object-id"); err == nil {
		t.Fatal("expected error but was nil")
	}
}
