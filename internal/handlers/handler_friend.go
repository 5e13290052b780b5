package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet_backend/internal/dto"
	"github.com/SscSPs/fx_wallet_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type friendHandler struct {
	friendService  portssvc.FriendSvcFacade
	profileService portssvc.ProfileSvcFacade
}

// RegisterFriendRoutes registers the friend and profile routes. rg must be authenticated.
func RegisterFriendRoutes(rg *gin.RouterGroup, friendService portssvc.FriendSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := &friendHandler{friendService: friendService, profileService: profileService}

	friends := rg.Group("/friends")
	{
		friends.GET("", h.listFriends)
		friends.GET("/requests", h.listPendingRequests)
		friends.POST("/requests", h.sendFriendRequest)
		friends.POST("/requests/:requestID/accept", h.acceptFriendRequest)
		friends.POST("/requests/:requestID/reject", h.rejectFriendRequest)
	}

	profiles := rg.Group("/profiles")
	{
		profiles.GET("", h.searchProfiles)
		profiles.GET("/:userID", h.getProfile)
	}
}

// listFriends godoc
// @Summary List friends
// @Description Lists the profiles of users with an accepted friend request to or from the caller, most recent first.
// @Tags friends
// @Produce  json
// @Success 200 {array} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /api/v1/friends [get]
func (h *friendHandler) listFriends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	friends, err := h.friendService.ListFriends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list friends")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProfileResponse(friends))
}

// listPendingRequests godoc
// @Summary List incoming friend requests
// @Tags friends
// @Produce  json
// @Success 200 {array} dto.FriendRequestResponse
// @Security BearerAuth
// @Router /api/v1/friends/requests [get]
func (h *friendHandler) listPendingRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requests, err := h.friendService.ListPendingRequests(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list friend requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPendingRequestResponse(requests))
}

// sendFriendRequest godoc
// @Summary Send a friend request
// @Tags friends
// @Accept  json
// @Produce  json
// @Param   request body dto.SendFriendRequestRequest true "Receiver"
// @Success 201 {object} dto.FriendRequestResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Receiver not found"
// @Failure 409 {object} map[string]string "Request already exists"
// @Security BearerAuth
// @Router /api/v1/friends/requests [post]
func (h *friendHandler) sendFriendRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req dto.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SendFriendRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	created, err := h.friendService.SendFriendRequest(c.Request.Context(), userID, req.ReceiverID)
	if err != nil {
		respondError(c, logger, err, "Failed to send friend request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFriendRequestResponse(*created))
}

// acceptFriendRequest godoc
// @Summary Accept a friend request
// @Tags friends
// @Produce  json
// @Param   requestID path string true "Friend request ID"
// @Success 200 {object} dto.FriendRequestResponse
// @Failure 400 {object} map[string]string "Request already answered"
// @Failure 404 {object} map[string]string "Request not found"
// @Security BearerAuth
// @Router /api/v1/friends/requests/{requestID}/accept [post]
func (h *friendHandler) acceptFriendRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	answered, err := h.friendService.AcceptFriendRequest(c.Request.Context(), userID, c.Param("requestID"))
	if err != nil {
		respondError(c, logger, err, "Failed to accept friend request")
		return
	}
	c.JSON(http.StatusOK, dto.ToFriendRequestResponse(*answered))
}

// rejectFriendRequest godoc
// @Summary Reject a friend request
// @Tags friends
// @Produce  json
// @Param   requestID path string true "Friend request ID"
// @Success 200 {object} dto.FriendRequestResponse
// @Failure 400 {object} map[string]string "Request already answered"
// @Failure 404 {object} map[string]string "Request not found"
// @Security BearerAuth
// @Router /api/v1/friends/requests/{requestID}/reject [post]
func (h *friendHandler) rejectFriendRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	answered, err := h.friendService.RejectFriendRequest(c.Request.Context(), userID, c.Param("requestID"))
	if err != nil {
		respondError(c, logger, err, "Failed to reject friend request")
		return
	}
	c.JSON(http.StatusOK, dto.ToFriendRequestResponse(*answered))
}

// searchProfiles godoc
// @Summary Search profiles by nickname
// @Tags profiles
// @Produce  json
// @Param   q query string false "Nickname fragment"
// @Param   limit query int false "Maximum number of profiles"
// @Success 200 {array} dto.ProfileResponse
// @Security BearerAuth
// @Router /api/v1/profiles [get]
func (h *friendHandler) searchProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var q dto.ProfileSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	profiles, err := h.profileService.SearchProfiles(c.Request.Context(), userID, q.Query, q.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to search profiles")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProfileResponse(profiles))
}

// getProfile godoc
// @Summary Get a profile
// @Tags profiles
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /api/v1/profiles/{userID} [get]
func (h *friendHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(*profile))
}
