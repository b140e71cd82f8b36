package service

import (
	"testing"

	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/models"
)

func TestCanViewPost(t *testing.T) {
	owner := "alice"
	published := &models.Post{Status: constants.PostStatusPublished, Username: &owner}
	private := &models.Post{Status: constants.PostStatusPrivate, Username: &owner}
	draft := &models.Post{Status: constants.PostStatusDraft, Username: &owner}

	anonymous := Viewer{}
	other := Viewer{Username: "bob"}
	self := Viewer{Username: "alice"}
	admin := Viewer{Username: "root", IsAdmin: true}

	cases := []struct {
		name   string
		post   *models.Post
		viewer Viewer
		want   bool
	}{
		{"published anonymous", published, anonymous, true},
		{"published other", published, other, true},
		{"private anonymous", private, anonymous, false},
		{"private other", private, other, false},
		{"private owner", private, self, true},
		{"private admin", private, admin, true},
		{"draft anonymous", draft, anonymous, false},
		{"draft owner", draft, self, true},
		{"draft admin", draft, admin, true},
	}
	for _, c := range cases {
		if got := CanViewPost(c.post, c.viewer); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCanViewComment(t *testing.T) {
	authorA := "a"
	authorB := "b"
	approved := &models.Comment{IsApproved: true, Username: &authorA}
	pending := &models.Comment{IsApproved: false, Username: &authorB}

	anonymous := Viewer{}
	userB := Viewer{Username: "b"}
	admin := Viewer{Username: "root", IsAdmin: true}

	if !CanViewComment(approved, anonymous) {
		t.Error("匿名访问者应可见已批准评论")
	}
	if CanViewComment(pending, anonymous) {
		t.Error("匿名访问者不应可见未批准评论")
	}
	if !CanViewComment(pending, userB) {
		t.Error("作者应可见自己未批准的评论")
	}
	if CanViewComment(pending, Viewer{Username: "c"}) {
		t.Error("他人不应可见未批准评论")
	}
	if !CanViewComment(pending, admin) {
		t.Error("管理员应可见未批准评论")
	}
}
