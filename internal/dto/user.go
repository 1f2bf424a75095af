package dto

import (
	"github.com/reda-h/wellness-companion/internal/models"
)

// RegisterRequest is the /register payload.
type RegisterRequest struct {
	UserName string `json:"user_name"`
	Mail     string `json:"mail"`
	Password string `json:"password"`
}

// LoginRequest holds the credentials sent by the client.
type LoginRequest struct {
	Mail     string `json:"mail"`
	Password string `json:"password"`
}

// PublicUser is the public-safe pair returned after register and login.
// No id, no hash.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterResponse wraps the confirmation message and the created user.
type RegisterResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// UserListItem represents one row of GET /users.
type UserListItem struct {
	ID       uint64 `json:"id"`
	UserName string `json:"user_name"`
	Mail     string `json:"mail"`
}

// ToPublicUser converts a User model to its public representation
func ToPublicUser(user models.User) PublicUser {
	return PublicUser{
		Name:  user.UserName,
		Email: user.Mail,
	}
}

// ToUserListItem converts a User model to a list entry
func ToUserListItem(user models.User) UserListItem {
	return UserListItem{
		ID:       user.ID,
		UserName: user.UserName,
		Mail:     user.Mail,
	}
}

// ToUserList converts users to list entries preserving order
func ToUserList(users []models.User) []UserListItem {
	items := make([]UserListItem, len(users))
	for i, user := range users {
		items[i] = ToUserListItem(user)
	}
	return items
}
