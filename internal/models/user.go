package models

// User is a dashboard account. Only the seeded demo account exists; the API
// issues tokens for it but never requires them.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}
