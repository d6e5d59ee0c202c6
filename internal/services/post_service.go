package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"travelbuddy/internal/models/db_models"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/internal/repositories"
	"travelbuddy/pkg/utils"
)

const (
	defaultFeedPageSize = 10
	maxFeedPageSize     = 50
	featuredPostLimit   = 5
)

type PostServiceInterface interface {
	CreatePost(ctx context.Context, accountID string, request request_models.CreatePostRequest) (*response_models.PostResponse, error)
	GetFeed(ctx context.Context, accountID string, filter request_models.PostFeedFilter) (*response_models.PostFeedResponse, error)
	ListMyPosts(ctx context.Context, accountID string) ([]response_models.PostResponse, error)
	ListFeatured(ctx context.Context, accountID string) ([]response_models.PostResponse, error)
	GetPost(ctx context.Context, accountID, postID string) (*response_models.PostResponse, error)
	UpdatePost(ctx context.Context, accountID, postID string, request request_models.UpdatePostRequest) (*response_models.PostResponse, error)
	ToggleLike(ctx context.Context, accountID, postID string) (liked bool, likeCount int64, err error)
	AddComment(ctx context.Context, accountID, postID string, request request_models.CreateCommentRequest) (*response_models.CommentResponse, error)
	DeleteComment(ctx context.Context, accountID, postID, commentID string) error
	DeletePost(ctx context.Context, accountID, postID string) error
}

type PostService struct {
	postRepo    repositories.PostRepository
	accountRepo repositories.AccountRepository
}

func NewPostService(
	postRepo repositories.PostRepository,
	accountRepo repositories.AccountRepository,
) PostServiceInterface {
	return &PostService{
		postRepo:    postRepo,
		accountRepo: accountRepo,
	}
}

func (p *PostService) CreatePost(ctx context.Context, accountID string, request request_models.CreatePostRequest) (*response_models.PostResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	account, err := p.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	post := &db_models.Post{
		AccountID:   ownerID,
		AuthorName:  account.FirstName,
		AuthorPhoto: account.ProfilePicture,
		Title:       request.Title,
		Content:     request.Content,
		Destination: request.Destination,
		Tags:        request.Tags,
	}

	if request.ItineraryID != "" {
		itineraryID, err := uuid.Parse(request.ItineraryID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		post.ItineraryID = &itineraryID
	}
	if request.TripID != "" {
		tripID, err := uuid.Parse(request.TripID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		post.TripID = &tripID
	}

	if err := p.postRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPostResponse(post, accountID)
	return &resp, nil
}

func (p *PostService) GetFeed(ctx context.Context, accountID string, filter request_models.PostFeedFilter) (*response_models.PostFeedResponse, error) {
	if filter.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultFeedPageSize
	}
	if filter.Limit > maxFeedPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	posts, total, err := p.postRepo.ListFeed(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	feed := &response_models.PostFeedResponse{
		Posts: make([]response_models.PostResponse, 0, len(posts)),
		Pagination: response_models.Pagination{
			CurrentPage: filter.Page,
			TotalPages:  totalPages,
			TotalPosts:  total,
			HasMore:     filter.Page < totalPages,
		},
	}
	for i := range posts {
		feed.Posts = append(feed.Posts, toPostResponse(&posts[i], accountID))
	}

	return feed, nil
}

func (p *PostService) ListMyPosts(ctx context.Context, accountID string) ([]response_models.PostResponse, error) {
	posts, err := p.postRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, toPostResponse(&posts[i], accountID))
	}
	return responses, nil
}

func (p *PostService) ListFeatured(ctx context.Context, accountID string) ([]response_models.PostResponse, error) {
	posts, err := p.postRepo.ListFeatured(ctx, featuredPostLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, toPostResponse(&posts[i], accountID))
	}
	return responses, nil
}

func (p *PostService) GetPost(ctx context.Context, accountID, postID string) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	// View counting is best effort; a failed bump never fails the read.
	if err := p.postRepo.IncrementViewCount(ctx, postID); err != nil {
		log.Printf("failed to bump view count for post %s: %v", postID, err)
	} else {
		post.ViewCount++
	}

	resp := toPostResponse(post, accountID)
	return &resp, nil
}

func (p *PostService) UpdatePost(ctx context.Context, accountID, postID string, request request_models.UpdatePostRequest) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil || post.AccountID.String() != accountID {
		return nil, utils.ErrPostNotFound
	}

	if request.Title != nil {
		if *request.Title == "" {
			return nil, utils.ErrInvalidInput
		}
		post.Title = *request.Title
	}
	if request.Content != nil {
		if *request.Content == "" {
			return nil, utils.ErrInvalidInput
		}
		post.Content = *request.Content
	}
	if request.Destination != nil {
		post.Destination = *request.Destination
	}
	if request.Tags != nil {
		post.Tags = *request.Tags
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPostResponse(post, accountID)
	return &resp, nil
}

func (p *PostService) ToggleLike(ctx context.Context, accountID, postID string) (bool, int64, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return false, 0, utils.ErrInvalidInput
	}

	post, err := p.postRepo.FindById(ctx, postID)
	if err != nil {
		return false, 0, utils.ErrDatabaseError
	}
	if post == nil {
		return false, 0, utils.ErrPostNotFound
	}

	existing, err := p.postRepo.FindLike(ctx, postID, accountID)
	if err != nil {
		return false, 0, utils.ErrDatabaseError
	}

	liked := false
	if existing != nil {
		if err := p.postRepo.DeleteLike(ctx, postID, accountID); err != nil {
			return false, 0, utils.ErrDatabaseError
		}
	} else {
		like := &db_models.PostLike{
			PostID:    post.ID,
			AccountID: ownerID,
		}
		if err := p.postRepo.InsertLike(ctx, like); err != nil {
			return false, 0, utils.ErrDatabaseError
		}
		liked = true
	}

	count, err := p.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return false, 0, utils.ErrDatabaseError
	}

	return liked, count, nil
}

func (p *PostService) AddComment(ctx context.Context, accountID, postID string, request request_models.CreateCommentRequest) (*response_models.CommentResponse, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	post, err := p.postRepo.FindById(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	account, err := p.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	comment := &db_models.PostComment{
		PostID:    post.ID,
		AccountID: ownerID,
		UserName:  account.FirstName,
		UserPhoto: account.ProfilePicture,
		Content:   request.Content,
	}

	if err := p.postRepo.InsertComment(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toCommentResponse(comment)
	return &resp, nil
}

// DeleteComment allows the comment author or the post owner to remove a
// comment; anyone else gets a forbidden error, not a not-found.
func (p *PostService) DeleteComment(ctx context.Context, accountID, postID, commentID string) error {
	post, err := p.postRepo.FindById(ctx, postID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	comment, err := p.postRepo.FindComment(ctx, commentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if comment == nil || comment.PostID != post.ID {
		return utils.ErrCommentNotFound
	}

	if comment.AccountID.String() != accountID && post.AccountID.String() != accountID {
		return utils.ErrCommentNotOwned
	}

	if err := p.postRepo.DeleteComment(ctx, commentID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PostService) DeletePost(ctx context.Context, accountID, postID string) error {
	post, err := p.postRepo.FindById(ctx, postID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil || post.AccountID.String() != accountID {
		return utils.ErrPostNotFound
	}
	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toPostResponse(post *db_models.Post, viewerID string) response_models.PostResponse {
	resp := response_models.PostResponse{
		ID:          post.ID.String(),
		AuthorName:  post.AuthorName,
		AuthorPhoto: post.AuthorPhoto,
		Title:       post.Title,
		Content:     post.Content,
		Destination: post.Destination,
		Tags:        post.Tags,
		LikeCount:   len(post.Likes),
		ViewCount:   post.ViewCount,
		Comments:    make([]response_models.CommentResponse, 0, len(post.Comments)),
		CreatedAt:   post.CreatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if post.ItineraryID != nil {
		resp.ItineraryID = post.ItineraryID.String()
	}
	if post.TripID != nil {
		resp.TripID = post.TripID.String()
	}
	for i := range post.Likes {
		if post.Likes[i].AccountID.String() == viewerID {
			resp.LikedByMe = true
			break
		}
	}
	for i := range post.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(&post.Comments[i]))
	}
	return resp
}

func toCommentResponse(comment *db_models.PostComment) response_models.CommentResponse {
	return response_models.CommentResponse{
		ID:        comment.ID.String(),
		UserName:  comment.UserName,
		UserPhoto: comment.UserPhoto,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
