package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/services"
	"travelbuddy/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{
		postService: postService,
	}
}

// Create godoc
// @Summary Publish a community post
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /posts [post]
func (p *PostController) Create(c *gin.Context) {
	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.postService.CreatePost(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Post published successfully")
}

// Feed godoc
// @Summary Browse the community feed
// @Tags Posts
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param destination query string false "Filter by destination"
// @Param tag query string false "Filter by tag"
// @Param search query string false "Search title and content"
// @Success 200 {object} utils.APIResponse
// @Router /posts [get]
func (p *PostController) Feed(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	filter := request_models.PostFeedFilter{
		Page:        page,
		Limit:       limit,
		Destination: c.Query("destination"),
		Tag:         c.Query("tag"),
		Search:      c.Query("search"),
	}

	resp, err := p.postService.GetFeed(c.Request.Context(), c.GetString("user_id"), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Feed fetched successfully")
}

// MyPosts godoc
// @Summary List your own posts
// @Tags Posts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /posts/my-posts [get]
func (p *PostController) MyPosts(c *gin.Context) {
	resp, err := p.postService.ListMyPosts(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Posts fetched successfully")
}

// Featured godoc
// @Summary List featured posts
// @Tags Posts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /posts/featured [get]
func (p *PostController) Featured(c *gin.Context) {
	resp, err := p.postService.ListFeatured(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Featured posts fetched successfully")
}

// Get godoc
// @Summary Read a post with its comments
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id} [get]
func (p *PostController) Get(c *gin.Context) {
	resp, err := p.postService.GetPost(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Post fetched successfully")
}

// Update godoc
// @Summary Edit one of your posts
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body request_models.UpdatePostRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id} [put]
func (p *PostController) Update(c *gin.Context) {
	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.postService.UpdatePost(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Post updated successfully")
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id}/like [post]
func (p *PostController) ToggleLike(c *gin.Context) {
	liked, likeCount, err := p.postService.ToggleLike(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	utils.RespondSuccess(c, gin.H{"liked": liked, "likeCount": likeCount}, message)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body request_models.CreateCommentRequest true "Comment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id}/comments [post]
func (p *PostController) AddComment(c *gin.Context) {
	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.postService.AddComment(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Comment added successfully")
}

// DeleteComment godoc
// @Summary Delete a comment you wrote, or any comment on your post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id}/comments/{commentId} [delete]
func (p *PostController) DeleteComment(c *gin.Context) {
	err := p.postService.DeleteComment(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("commentId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comment deleted successfully")
}

// Delete godoc
// @Summary Delete one of your posts
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id} [delete]
func (p *PostController) Delete(c *gin.Context) {
	if err := p.postService.DeletePost(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted successfully")
}
