package models

import "time"

// ApiKey is an alternative credential, typically held by the automation
// workflow. The secret is only returned when the key is created; listings
// carry Hint instead.
type ApiKey struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"user_id"`
	Name       string     `db:"name" json:"name"`
	ApiKey     string     `db:"api_key" json:"api_key,omitempty"`
	Hint       string     `db:"-" json:"hint"`
	LastUsedAt *time.Time `db:"last_used_at" json:"last_used_at"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// Masked returns a copy safe to list: the secret is replaced by its first
// characters.
func (k ApiKey) Masked() *ApiKey {
	const shown = 4
	if len(k.ApiKey) > shown {
		k.Hint = k.ApiKey[:shown] + "..."
	} else {
		k.Hint = "..."
	}
	k.ApiKey = ""
	return &k
}
