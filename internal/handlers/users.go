package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mactanair/airline-backend/internal/services"
)

// UserData returns the authenticated caller's account info.
func UserData(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("token")
		user, err := accounts.Authenticate(token)
		if err != nil {
			respondError(c, err, "User")
			return
		}
		c.JSON(200, gin.H{"user": userBody(user)})
	}
}

// ListAuthUsers returns the administrative account listing.
func ListAuthUsers(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := accounts.ListUsers()
		if err != nil {
			respondError(c, err, "User")
			return
		}

		body := make([]gin.H, 0, len(users))
		for _, user := range users {
			body = append(body, gin.H{
				"id":           user.ID,
				"username":     user.Username,
				"email":        user.Email,
				"is_superuser": user.IsSuperuser,
				"is_staff":     user.IsStaff,
				"is_active":    user.IsActive,
				"date_joined":  user.CreatedAt,
				"last_login":   user.LastLogin,
			})
		}
		c.JSON(200, body)
	}
}

// ListPassengers returns every passenger profile with its account.
func ListPassengers(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		passengers, err := accounts.ListPassengers()
		if err != nil {
			respondError(c, err, "Passenger")
			return
		}

		body := make([]gin.H, 0, len(passengers))
		for _, p := range passengers {
			body = append(body, gin.H{
				"user": gin.H{
					"id":           p.User.ID,
					"username":     p.User.Username,
					"first_name":   p.User.FirstName,
					"last_name":    p.User.LastName,
					"email":        p.User.Email,
					"is_superuser": p.User.IsSuperuser,
					"is_staff":     p.User.IsStaff,
					"is_active":    p.User.IsActive,
					"date_joined":  p.User.CreatedAt,
					"last_login":   p.User.LastLogin,
				},
				"contact_number": p.ContactNumber,
				"gender":         p.Gender,
				"address":        p.Address,
			})
		}
		c.JSON(200, body)
	}
}

// ToggleStaffStatus flips is_staff on the target account and reports the new
// value. There is deliberately no self-protection.
func ToggleStaffStatus(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid user id"})
			return
		}

		isStaff, err := accounts.ToggleStaff(uint(id))
		if err != nil {
			respondError(c, err, "User")
			return
		}

		c.JSON(200, gin.H{
			"success":  true,
			"is_staff": isStaff,
			"message":  "is_staff status updated successfully",
		})
	}
}

// ToggleActiveStatus flips is_active on the target account.
func ToggleActiveStatus(accounts services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid user id"})
			return
		}

		isActive, err := accounts.ToggleActive(uint(id))
		if err != nil {
			respondError(c, err, "User")
			return
		}

		c.JSON(200, gin.H{
			"success":   true,
			"is_active": isActive,
			"message":   "is_active status updated successfully",
		})
	}
}
