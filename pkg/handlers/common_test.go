package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
)

func TestWriteResponse(t *testing.T) {
	w := httptest.NewRecorder()
	WriteResponse(w, "test_message", http.StatusTeapot)

	if w.Code != http.StatusTeapot {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusTeapot, w.Code)
	}

	res := map[string]string{}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("can't unmarshal response: %v", err.Error())
	}

	if res["message"] != "test_message" {
		t.Errorf("unexpected response: %v", res)
	}
}

func TestMapToPostResponseHasLiked(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepoMock := NewMockUsersRepo(ctrl)

	for i := range userIDs {
		usersRepoMock.EXPECT().GetByID(userIDs[i]).Return(testUserData[i], nil).AnyTimes()
	}

	// viewer 2 liked post 0, viewer 1 did not
	res, err := MapToPostResponse(testPostData[0], testUserData[0], userIDs[1], nil, usersRepoMock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if !res.HasLiked {
		t.Error("expected hasLiked true for a liker")
	}

	res, err = MapToPostResponse(testPostData[0], testUserData[0], userIDs[0], nil, usersRepoMock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if res.HasLiked {
		t.Error("expected hasLiked false for a non-liker")
	}

	// anonymous viewer
	res, err = MapToPostResponse(testPostData[0], testUserData[0], 0, nil, usersRepoMock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if res.HasLiked {
		t.Error("expected hasLiked false for an anonymous viewer")
	}
}
