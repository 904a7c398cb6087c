package services

import (
	"context"
	"time"

	"github.com/chessgrid/chess-stats/format"
	"github.com/chessgrid/chess-stats/models"
)

// ForumStore is the slice of the data store this service reads.
type ForumStore interface {
	ForumPosts() []models.ForumPost
}

// ForumPostView is a forum post shaped for the activity widget.
type ForumPostView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Replies   int       `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
	TimeAgo   string    `json:"time_ago"`
}

type ForumService interface {
	Recent(ctx context.Context, maxItems int) []ForumPostView
}

type forumService struct {
	store ForumStore
	now   Clock
}

func NewForumService(store ForumStore, clock Clock) ForumService {
	return &forumService{
		store: store,
		now:   orNow(clock),
	}
}

// Recent returns posts in upstream (newest-first) order, each carrying its
// relative-time string against the service clock.
func (s *forumService) Recent(_ context.Context, maxItems int) []ForumPostView {
	posts := truncate(s.store.ForumPosts(), maxItems)
	now := s.now()
	views := make([]ForumPostView, len(posts))
	for i, p := range posts {
		views[i] = ForumPostView{
			ID:        p.ID,
			Title:     p.Title,
			Author:    p.Author,
			Replies:   p.Replies,
			CreatedAt: p.CreatedAt,
			TimeAgo:   format.RelativeTime(p.CreatedAt, now),
		}
	}
	return views
}
