package models

import "time"

// FriendRequest is a row of the friend_requests table.
type FriendRequest struct {
	ID         string    `db:"id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Profile is a row of the profiles table.
type Profile struct {
	ID        string    `db:"id"`
	Nickname  *string   `db:"nickname"`
	AvatarURL *string   `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
}
