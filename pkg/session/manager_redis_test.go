package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis"
	"github.com/dgrijalva/jwt-go"
	"github.com/elliotchance/redismock/v8"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
)

var token = "header.payload.signature"
var sessID = "9f2b41d3-aaaa-4c1e-8f6d-2b0cf4e71d55"
var expiresAt = time.Date(2999, 11, 17, 20, 34, 58, 0, time.UTC)
var u = &User{Username: "dana.reyes", ID: 25}

func makeSession() *Session {
	return &Session{
		User:           &User{ID: u.ID, Username: u.Username},
		SessionID:      sessID,
		StandardClaims: jwt.StandardClaims{ExpiresAt: expiresAt.Unix()},
	}
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	ctx := context.Background()
	w := httptest.NewRecorder()

	jwtMock.EXPECT().Create(ctx, w, u, sessID, expiresAt.Unix()).Return(token, nil)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock)

	mock.On("Set", ctx, sessID, u.ID, time.Duration(0)).Return(redis.NewStatusCmd(ctx, "set", sessID, u.ID))
	mock.On("SAdd", ctx, strconv.FormatInt(u.ID, 10), []interface{}{sessID}).Return(redis.NewIntCmd(ctx, "sadd", strconv.FormatInt(u.ID, 10), sessID))

	fact, err := sm.Create(ctx, w, u, sessID, expiresAt.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if fact != token {
		t.Errorf("expected %v but was %v", token, fact)
	}
}

func TestCreateRegistryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	ctx := context.Background()
	w := httptest.NewRecorder()

	jwtMock.EXPECT().Create(ctx, w, u, sessID, expiresAt.Unix()).Return(token, nil)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock)

	mock.On("Set", ctx, sessID, u.ID, time.Duration(0)).Return(redis.NewStatusResult("", errors.New("redis_error")))

	_, err := sm.Create(ctx, w, u, sessID, expiresAt.Unix())
	if err == nil {
		t.Fatalf("expected error but was nil")
	}
}

func TestCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	mock := redismock.NewMock()

	sm := NewSessionManagerRedis(mock, jwtMock)
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	sess := makeSession()

	jwtMock.EXPECT().Check(ctx, r).Return(sess, nil)
	mock.On("Get", ctx, sessID).Return(redis.NewStringResult(strconv.FormatInt(u.ID, 10), nil))

	fact, err := sm.Check(ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if fact != sess {
		t.Errorf("expected %v but was %v", sess, fact)
	}
}

func TestCheckWrongUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	mock := redismock.NewMock()

	sm := NewSessionManagerRedis(mock, jwtMock)
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	jwtMock.EXPECT().Check(ctx, r).Return(makeSession(), nil)
	mock.On("Get", ctx, sessID).Return(redis.NewStringResult("99", nil))

	fact, err := sm.Check(ctx, r)
	if fact != nil || err == nil {
		t.Fatalf("expected error for foreign session but was %v, %v", fact, err)
	}
}

func TestCheckRevoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	mock := redismock.NewMock()

	sm := NewSessionManagerRedis(mock, jwtMock)
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	jwtMock.EXPECT().Check(ctx, r).Return(makeSession(), nil)
	mock.On("Get", ctx, sessID).Return(redis.NewStringResult("", redis.Nil))

	fact, err := sm.Check(ctx, r)
	if fact != nil || err == nil {
		t.Fatalf("expected error for revoked session but was %v, %v", fact, err)
	}
}

func TestDestroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(r.Context(), SessionKey, makeSession())
	r = r.WithContext(ctx)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock)
	w := httptest.NewRecorder()

	mock.On("Del", ctx, []string{sessID}).Return(redis.NewIntResult(1, nil))

	err := sm.Destroy(ctx, w, r)
	if err != nil {
		t.Errorf("unexpected error: %v", err.Error())
	}
}

func TestDestroyAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	ctx := context.Background()
	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock)

	mock.On("SMembers", ctx, strconv.FormatInt(u.ID, 10)).Return(redis.NewStringSliceResult([]string{sessID}, nil))
	mock.On("Del", ctx, []string{sessID}).Return(redis.NewIntResult(1, nil))

	err := sm.DestroyAll(ctx, u)
	if err != nil {
		t.Errorf("unexpected error: %v", err.Error())
	}
}

// End-to-end registry flow against a real redis protocol implementation.
func TestRegistryRoundtrip(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Fatalf("cannot start miniredis: %v", err.Error())
	}
	defer srv.Close()

	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)
	sm := NewSessionManagerRedis(rdb, jwtMock)

	ctx := context.Background()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	jwtMock.EXPECT().Create(ctx, w, u, sessID, expiresAt.Unix()).Return(token, nil)
	jwtMock.EXPECT().Check(ctx, r).Return(makeSession(), nil).Times(2)

	fact, err := sm.Create(ctx, w, u, sessID, expiresAt.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if fact != token {
		t.Fatalf("expected %v but was %v", token, fact)
	}

	sess, err := sm.Check(ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if sess.SessionID != sessID {
		t.Fatalf("expected %v but was %v", sessID, sess.SessionID)
	}

	err = sm.DestroyAll(ctx, u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if _, err = sm.Check(ctx, r); err == nil {
		t.Fatalf("expected error after revocation but was nil")
	}
}
