package db_models

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}
