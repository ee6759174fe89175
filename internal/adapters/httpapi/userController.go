package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) LoginUser(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) RegisterUser(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		Email     string `json:"email" binding:"required"`
		Password  string `json:"password" binding:"required"`
		AvatarURL string `json:"avatarUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	u, err := ctl.uc.RegisterUser(c.Request.Context(), req.Name, req.Email, req.Password, req.AvatarURL)
	if err != nil {
		respondError(c, err, "could not register user")
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) GetMe(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	u, err := ctl.uc.GetMe(c.Request.Context(), userID.(string))
	if err != nil {
		respondError(c, err, "could not load profile")
		return
	}
	c.JSON(http.StatusOK, u)
}
