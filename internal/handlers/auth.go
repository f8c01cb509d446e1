package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mactanair/airline-backend/internal/services"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a passenger account: the user record and its Passenger
// profile in one transaction.
func Register(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterPassengerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if _, err := accounts.RegisterPassenger(input); err != nil {
			respondError(c, err, "User")
			return
		}

		c.JSON(201, gin.H{"message": "Registration successful"})
	}
}

func Login(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user, token, err := accounts.Login(input.Username, input.Password)
		if err != nil {
			respondError(c, err, "User")
			return
		}

		c.JSON(200, gin.H{
			"token":   token,
			"user":    userBody(user),
			"message": "Login successful",
		})
	}
}

// RegisterAdmin creates one account plus one Admin record per supplied code.
// A single invalid code fails the whole batch before anything is created.
func RegisterAdmin(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterAdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if _, err := accounts.RegisterAdmin(input); err != nil {
			respondError(c, err, "User")
			return
		}

		c.JSON(201, gin.H{"message": "Admin registered successfully"})
	}
}

func AdminLogin(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user, token, err := accounts.AdminLogin(input.Username, input.Password)
		if err != nil {
			respondError(c, err, "User")
			return
		}

		c.JSON(200, gin.H{
			"token":   token,
			"user":    userBody(user),
			"message": "Login successful",
		})
	}
}

// Logout revokes the caller's token.
func Logout(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")
		if err := accounts.Logout(token); err != nil {
			respondError(c, err, "Token")
			return
		}
		c.JSON(200, gin.H{"message": "Logged out successfully"})
	}
}
