package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/pkg/utils"
)

type fakePostRepo struct {
	posts    map[string]*db_models.Post
	comments map[string]*db_models.PostComment
	likes    map[string]*db_models.PostLike
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:    make(map[string]*db_models.Post),
		comments: make(map[string]*db_models.PostComment),
		likes:    make(map[string]*db_models.PostLike),
	}
}

func (f *fakePostRepo) Insert(_ context.Context, post *db_models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	f.posts[post.ID.String()] = post
	return nil
}

func (f *fakePostRepo) FindById(_ context.Context, id string) (*db_models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	copied.Comments = nil
	copied.Likes = nil
	for _, c := range f.comments {
		if c.PostID == post.ID {
			copied.Comments = append(copied.Comments, *c)
		}
	}
	for _, l := range f.likes {
		if l.PostID == post.ID {
			copied.Likes = append(copied.Likes, *l)
		}
	}
	return &copied, nil
}

func (f *fakePostRepo) ListFeed(_ context.Context, filter request_models.PostFeedFilter) ([]db_models.Post, int64, error) {
	var out []db_models.Post
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePostRepo) ListByAccount(_ context.Context, accountID string) ([]db_models.Post, error) {
	var out []db_models.Post
	for _, p := range f.posts {
		if p.AccountID.String() == accountID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListFeatured(_ context.Context, limit int) ([]db_models.Post, error) {
	var out []db_models.Post
	for _, p := range f.posts {
		if p.Featured && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(_ context.Context, post *db_models.Post) error {
	f.posts[post.ID.String()] = post
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) IncrementViewCount(_ context.Context, id string) error {
	if p, ok := f.posts[id]; ok {
		p.ViewCount++
	}
	return nil
}

func (f *fakePostRepo) InsertComment(_ context.Context, comment *db_models.PostComment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	f.comments[comment.ID.String()] = comment
	return nil
}

func (f *fakePostRepo) FindComment(_ context.Context, commentID string) (*db_models.PostComment, error) {
	return f.comments[commentID], nil
}

func (f *fakePostRepo) DeleteComment(_ context.Context, commentID string) error {
	delete(f.comments, commentID)
	return nil
}

func (f *fakePostRepo) FindLike(_ context.Context, postID, accountID string) (*db_models.PostLike, error) {
	for _, l := range f.likes {
		if l.PostID.String() == postID && l.AccountID.String() == accountID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) InsertLike(_ context.Context, like *db_models.PostLike) error {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	f.likes[like.ID.String()] = like
	return nil
}

func (f *fakePostRepo) DeleteLike(_ context.Context, postID, accountID string) error {
	for id, l := range f.likes {
		if l.PostID.String() == postID && l.AccountID.String() == accountID {
			delete(f.likes, id)
		}
	}
	return nil
}

func (f *fakePostRepo) CountLikes(_ context.Context, postID string) (int64, error) {
	var count int64
	for _, l := range f.likes {
		if l.PostID.String() == postID {
			count++
		}
	}
	return count, nil
}

func seedAccount(t *testing.T, accounts *fakeAccountRepo, name string) uuid.UUID {
	t.Helper()
	account := &db_models.Account{FirstName: name, Email: name + "@example.com"}
	if err := accounts.Insert(context.Background(), account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account.ID
}

func TestUpdatePostOwnerScoped(t *testing.T) {
	repo := newFakePostRepo()
	accounts := newFakeAccountRepo()
	svc := NewPostService(repo, accounts)

	owner := seedAccount(t, accounts, "Asha")
	created, err := svc.CreatePost(context.Background(), owner.String(), request_models.CreatePostRequest{
		Title:   "Monsoon in Kerala",
		Content: "Backwaters are at their best in July.",
		Tags:    []string{"kerala"},
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	title := "Monsoon in Kerala, revisited"
	tags := []string{"kerala", "monsoon"}
	stranger := uuid.New().String()
	if _, err := svc.UpdatePost(context.Background(), stranger, created.ID, request_models.UpdatePostRequest{Title: &title}); !errors.Is(err, utils.ErrPostNotFound) {
		t.Fatalf("stranger update: got %v, want ErrPostNotFound", err)
	}

	updated, err := svc.UpdatePost(context.Background(), owner.String(), created.ID, request_models.UpdatePostRequest{Title: &title, Tags: &tags})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != title {
		t.Errorf("title = %q, want %q", updated.Title, title)
	}
	if len(updated.Tags) != 2 {
		t.Errorf("tags = %v, want 2 entries", updated.Tags)
	}
	if updated.Content != created.Content {
		t.Errorf("content changed on a title-only update: %q", updated.Content)
	}

	empty := ""
	if _, err := svc.UpdatePost(context.Background(), owner.String(), created.ID, request_models.UpdatePostRequest{Title: &empty}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("blank title: got %v, want ErrInvalidInput", err)
	}
}

func TestDeleteCommentAuthorization(t *testing.T) {
	repo := newFakePostRepo()
	accounts := newFakeAccountRepo()
	svc := NewPostService(repo, accounts)

	owner := seedAccount(t, accounts, "Asha")
	commenter := seedAccount(t, accounts, "Ravi")

	post, err := svc.CreatePost(context.Background(), owner.String(), request_models.CreatePostRequest{
		Title:   "Goa on a budget",
		Content: "Skip the resorts.",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	comment, err := svc.AddComment(context.Background(), commenter.String(), post.ID, request_models.CreateCommentRequest{Content: "Any hostel tips?"})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	stranger := uuid.New().String()
	if err := svc.DeleteComment(context.Background(), stranger, post.ID, comment.ID); !errors.Is(err, utils.ErrCommentNotOwned) {
		t.Fatalf("stranger delete: got %v, want ErrCommentNotOwned", err)
	}
	if err := svc.DeleteComment(context.Background(), owner.String(), post.ID, uuid.New().String()); !errors.Is(err, utils.ErrCommentNotFound) {
		t.Fatalf("missing comment: got %v, want ErrCommentNotFound", err)
	}

	// The post owner may moderate comments they did not write.
	if err := svc.DeleteComment(context.Background(), owner.String(), post.ID, comment.ID); err != nil {
		t.Fatalf("post owner delete: %v", err)
	}

	second, err := svc.AddComment(context.Background(), commenter.String(), post.ID, request_models.CreateCommentRequest{Content: "Found one."})
	if err != nil {
		t.Fatalf("add second comment: %v", err)
	}
	if err := svc.DeleteComment(context.Background(), commenter.String(), post.ID, second.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
}

func TestMyPostsAndFeaturedListings(t *testing.T) {
	repo := newFakePostRepo()
	accounts := newFakeAccountRepo()
	svc := NewPostService(repo, accounts)

	asha := seedAccount(t, accounts, "Asha")
	ravi := seedAccount(t, accounts, "Ravi")

	for i, author := range []uuid.UUID{asha, asha, ravi} {
		if _, err := svc.CreatePost(context.Background(), author.String(), request_models.CreatePostRequest{
			Title:   "Trip notes",
			Content: "Some notes.",
		}); err != nil {
			t.Fatalf("create post %d: %v", i, err)
		}
	}

	mine, err := svc.ListMyPosts(context.Background(), asha.String())
	if err != nil {
		t.Fatalf("my posts: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("my posts = %d, want 2", len(mine))
	}

	for _, p := range repo.posts {
		if p.AccountID == ravi {
			p.Featured = true
		}
	}
	featured, err := svc.ListFeatured(context.Background(), asha.String())
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(featured) != 1 {
		t.Errorf("featured = %d, want 1", len(featured))
	}
}
