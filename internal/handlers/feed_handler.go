package handlers

import (
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FeedHandler struct {
	feedService *services.FeedService
}

func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

func (h *FeedHandler) ListPosts(c *fiber.Ctx) error {
	filter := storage.PostFilter{
		Page: storage.Page{
			Limit:  c.QueryInt("limit", services.DefaultFeedLimit),
			Offset: c.QueryInt("offset", 0),
		},
	}
	if raw := c.Query("addictionId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid addictionId")
		}
		filter.AddictionID = &id
	}

	posts, err := h.feedService.ListFeed(c.UserContext(), identity.Viewer(c), filter)
	if err != nil {
		return statusFor(c, err, "Failed to fetch posts")
	}
	return c.JSON(dto.FeedResponse{
		Success: true,
		Posts:   posts,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	})
}

func (h *FeedHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	post, err := h.feedService.CreatePost(c.UserContext(), userID, &req)
	if err != nil {
		return statusFor(c, err, "Failed to create post")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PostResponse{Success: true, Post: *post})
}

func (h *FeedHandler) GetPost(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrPostNotFound.Error())
	}

	post, err := h.feedService.GetPost(c.UserContext(), identity.Viewer(c), id)
	if err != nil {
		return statusFor(c, err, "Failed to fetch post")
	}
	return c.JSON(dto.PostResponse{Success: true, Post: *post})
}

func (h *FeedHandler) DeletePost(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrPostNotFound.Error())
	}

	if err := h.feedService.DeletePost(c.UserContext(), userID, id); err != nil {
		return statusFor(c, err, "Failed to delete post")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *FeedHandler) ListComments(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrPostNotFound.Error())
	}

	comments, err := h.feedService.ListComments(c.UserContext(), id)
	if err != nil {
		return statusFor(c, err, "Failed to fetch comments")
	}
	return c.JSON(dto.CommentsResponse{Success: true, Comments: comments})
}

func (h *FeedHandler) CreateComment(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrPostNotFound.Error())
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	comment, err := h.feedService.AddComment(c.UserContext(), userID, postID, &req)
	if err != nil {
		return statusFor(c, err, "Failed to create comment")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "comment": comment})
}

func (h *FeedHandler) DeleteComment(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrCommentNotFound.Error())
	}

	if err := h.feedService.DeleteComment(c.UserContext(), userID, id); err != nil {
		return statusFor(c, err, "Failed to delete comment")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *FeedHandler) ReactToPost(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	postID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrPostNotFound.Error())
	}

	var req dto.ReactRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	active, err := h.feedService.TogglePostReaction(c.UserContext(), userID, postID, req.Type)
	if err != nil {
		return statusFor(c, err, "Failed to react to post")
	}
	return c.JSON(dto.ReactResponse{Success: true, Type: req.Type, Active: active})
}

func (h *FeedHandler) ReactToComment(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	commentID, ok := uuidParam(c, "id")
	if !ok {
		return fail(c, fiber.StatusNotFound, services.ErrCommentNotFound.Error())
	}

	// the body is optional here
	var req dto.ReactRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	active, err := h.feedService.ToggleCommentReaction(c.UserContext(), userID, commentID, req.Type)
	if err != nil {
		return statusFor(c, err, "Failed to react to comment")
	}
	reactionType := req.Type
	if reactionType == "" {
		reactionType = models.ReactionHearYou
	}
	return c.JSON(dto.ReactResponse{Success: true, Type: reactionType, Active: active})
}
