package models

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"nome" gorm:"column:nome;index"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:hashed_password;not null"`
}

func (User) TableName() string {
	return "user"
}
