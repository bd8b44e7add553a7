// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/payment-system/backend/internal/application/usecase/user"
	"github.com/payment-system/backend/internal/integration/entrypoint/dto"
)

// UserController handles user endpoints.
type UserController struct {
	registerUseCase   *user.RegisterUserUseCase
	getUseCase        *user.GetUserUseCase
	listUseCase       *user.ListUsersUseCase
	searchUseCase     *user.SearchUsersUseCase
	updateUseCase     *user.UpdateUserUseCase
	deactivateUseCase *user.DeactivateUserUseCase
	deleteUseCase     *user.DeleteUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	registerUseCase *user.RegisterUserUseCase,
	getUseCase *user.GetUserUseCase,
	listUseCase *user.ListUsersUseCase,
	searchUseCase *user.SearchUsersUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deactivateUseCase *user.DeactivateUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
) *UserController {
	return &UserController{
		registerUseCase:   registerUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		searchUseCase:     searchUseCase,
		updateUseCase:     updateUseCase,
		deactivateUseCase: deactivateUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// Register handles POST /users requests.
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), user.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterUserResponse{
		UserID: output.UserID,
		Email:  output.Email,
	})
}

// Get handles GET /users/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
		})
		return
	}

	output, err := c.getUseCase.ByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(output))
}

// GetByEmail handles GET /users/by-email requests.
func (c *UserController) GetByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter email is required",
		})
		return
	}

	output, err := c.getUseCase.ByEmail(ctx.Request.Context(), email)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(output))
}

// List handles GET /users requests. Passing ?active=true restricts the
// listing to active users ordered by last name.
func (c *UserController) List(ctx *gin.Context) {
	input := user.ListUsersInput{
		ActiveOnly: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserListResponse{
		Users: dto.NewUserResponses(output.Users),
		Total: output.Total,
	})
}

// Search handles GET /users/search requests.
func (c *UserController) Search(ctx *gin.Context) {
	lastName := ctx.Query("last_name")
	if lastName == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter last_name is required",
		})
		return
	}

	output, err := c.searchUseCase.Execute(ctx.Request.Context(), lastName)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserListResponse{
		Users: dto.NewUserResponses(output),
		Total: int64(len(output)),
	})
}

// Update handles PUT /users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), user.UpdateUserInput{
		UserID:      id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(output))
}

// Deactivate handles POST /users/:id/deactivate requests.
func (c *UserController) Deactivate(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
		})
		return
	}

	if err := c.deactivateUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
