package user

import (
	"context"
	"io"
	"net/http"

	"userdir/api/ctxutil"
	"userdir/api/response"
	userapp "userdir/application/user"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=controller.go -destination=mocks/service_mock.go -package=mocks Service

// Service the user operations the controller exposes
type Service interface {
	CreateUser(ctx context.Context, dto userapp.UserDTO) (*userapp.UserDTO, error)
	ListUsers(ctx context.Context) ([]userapp.UserDTO, error)
	UpdateUser(ctx context.Context, email string, dto userapp.UserDTO) (*userapp.UserDTO, error)
	PatchUser(ctx context.Context, email string, patch []byte) (*userapp.UserDTO, error)
	DeleteUser(ctx context.Context, email string) error
	SearchByBirthDateRange(ctx context.Context, dto userapp.DateRangeDTO) ([]userapp.UserDTO, error)
}

// Controller User controller
type Controller struct {
	userService Service
}

// NewController Create user controller
func NewController(userService Service) *Controller {
	return &Controller{
		userService: userService,
	}
}

// RegisterRoutes Register user routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/users")
	{
		userGroup.POST("", c.CreateUser)
		userGroup.GET("", c.ListUsers)
		userGroup.POST("/search", c.SearchUsers)
		userGroup.PUT("/:email", c.UpdateUser)
		userGroup.PATCH("/:email", c.PatchUser)
		userGroup.DELETE("/:email", c.DeleteUser)
	}
}

// CreateUser Create user
func (c *Controller) CreateUser(ctx *gin.Context) {
	var req userapp.UserDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := c.userService.CreateUser(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, user, "User created successfully")
}

// ListUsers Get all users
func (c *Controller) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, users, "Users retrieved successfully")
}

// UpdateUser full replacement
func (c *Controller) UpdateUser(ctx *gin.Context) {
	var req userapp.UserDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := c.userService.UpdateUser(ctxutil.WithRequestID(ctx), ctx.Param("email"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, user, "User updated successfully")
}

// PatchUser body is a JSON Patch document, passed through undecoded.
func (c *Controller) PatchUser(ctx *gin.Context) {
	patch, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		response.HandleError(ctx, err, "Failed to read request body", http.StatusBadRequest)
		return
	}

	user, err := c.userService.PatchUser(ctxutil.WithRequestID(ctx), ctx.Param("email"), patch)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, user, "User updated successfully")
}

// DeleteUser Delete user
func (c *Controller) DeleteUser(ctx *gin.Context) {
	if err := c.userService.DeleteUser(ctxutil.WithRequestID(ctx), ctx.Param("email")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, nil, "User deleted successfully")
}

// SearchUsers users born within the requested range
func (c *Controller) SearchUsers(ctx *gin.Context) {
	var req userapp.DateRangeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	users, err := c.userService.SearchByBirthDateRange(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, users, "Users retrieved successfully")
}
