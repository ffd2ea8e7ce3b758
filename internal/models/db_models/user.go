package db_models

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleStaff   UserRole = "staff"
	RoleAdmin   UserRole = "admin"
)

const UserCollection = "user"

type User struct {
	Name         string   `bson:"name"`
	Email        string   `bson:"email"`
	PasswordHash string   `bson:"password_hash"`
	Role         UserRole `bson:"role"`
	Phone        *string  `bson:"phone"`
	IsActive     bool     `bson:"is_active"`
}
