package types

// UserEntity is a row of the user table:
//
//	CREATE TABLE IF NOT EXISTS user (id text PRIMARY KEY, username text)
type UserEntity struct {
	ID       string `db:"id"`
	Username string `db:"username"`
}
