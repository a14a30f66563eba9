// Package model defines database models
package model

// Account holds the credential record of a user. The email doubles
// as the document key, which is what enforces account uniqueness.
type Account struct {
	Email        string `gorm:"primaryKey"`
	PasswordHash string `gorm:"not null"`
	Joined       string
	Verified     bool    `gorm:"default:false"`
	VerifyToken  *string `gorm:"uniqueIndex"`
}
