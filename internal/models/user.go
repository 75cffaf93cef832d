package models

// Role controls what a user may do through the API.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// User represents the user model in the database
type User struct {
	Base
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Phone      string `gorm:"size:20" json:"phone,omitempty"`
	Role       Role   `gorm:"size:16;default:client" json:"role"`
	IsVerified bool   `gorm:"default:false" json:"is_verified"`

	Questionnaires []Questionnaire `gorm:"foreignKey:UserID" json:"questionnaires,omitempty"`
	Budgets        []Budget        `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Transactions   []Transaction   `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
