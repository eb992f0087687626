package handlers

import (
	"net/http"
	"strings"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes wires the public auth endpoints and the protected /me.
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", h.Me)
	}
}

// Signup accepts either a JSON body or a multipart form. The résumé file
// part ("resume") only exists in the multipart variant.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	var resume *services.ResumeFile
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fileHeader, err := c.FormFile("resume")
		if err == nil && fileHeader != nil {
			file, err := fileHeader.Open()
			if err != nil {
				apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to read resume file"))
				return
			}
			defer file.Close()

			resume = &services.ResumeFile{
				Reader: file,
				Info: dto.ResumeUpload{
					OriginalName: fileHeader.Filename,
					ContentType:  fileHeader.Header.Get("Content-Type"),
					Size:         fileHeader.Size,
				},
			}
		}
	}

	db := h.GetDB(c)

	user, err := h.authService.Signup(c.Request.Context(), db, &req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignupResponse{
		Message:   "User registered successfully",
		UserEmail: user.Email,
	})
}

// Login verifies credentials and delivers the bearer token via the
// Authorization response header.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, token, err := h.authService.Login(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, response)
}

// Me returns the authenticated user's summary.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.GetUser(c.Request.Context(), db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
