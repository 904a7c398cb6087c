package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/chessgrid/chess-stats/models"
	"github.com/chessgrid/chess-stats/services"
)

type fakeForumStore struct {
	posts []models.ForumPost
}

func (f *fakeForumStore) ForumPosts() []models.ForumPost {
	return f.posts
}

func TestRecent_RelativeTimeUsesInjectedClock(t *testing.T) {
	now := time.Date(2026, time.January, 27, 12, 0, 0, 0, time.UTC)
	store := &fakeForumStore{posts: []models.ForumPost{
		{ID: "p1", Title: "one", CreatedAt: now.Add(-30 * time.Second)},
		{ID: "p2", Title: "two", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "p3", Title: "three", CreatedAt: now.Add(-3 * 24 * time.Hour)},
	}}
	svc := services.NewForumService(store, func() time.Time { return now })

	got := svc.Recent(context.Background(), 0)

	want := []string{"just now", "5h ago", "3d ago"}
	if len(got) != len(want) {
		t.Fatalf("got %d posts, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].TimeAgo != w {
			t.Errorf("post[%d].TimeAgo = %q, want %q", i, got[i].TimeAgo, w)
		}
	}
}

func TestRecent_TruncatesPreservingOrder(t *testing.T) {
	now := time.Date(2026, time.January, 27, 12, 0, 0, 0, time.UTC)
	store := &fakeForumStore{posts: []models.ForumPost{
		{ID: "p1", CreatedAt: now.Add(-time.Hour)},
		{ID: "p2", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "p3", CreatedAt: now.Add(-3 * time.Hour)},
	}}
	svc := services.NewForumService(store, func() time.Time { return now })

	got := svc.Recent(context.Background(), 2)

	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p2" {
		t.Errorf("truncation broke order: %+v", got)
	}
}

func TestRecent_Empty(t *testing.T) {
	svc := services.NewForumService(&fakeForumStore{}, nil)
	got := svc.Recent(context.Background(), 5)
	if got == nil || len(got) != 0 {
		t.Errorf("want empty non-nil slice, got %v", got)
	}
}
