package app

import "errors"

var (
	// ErrInvalidCredentials indicates a login with an unknown email or a
	// wrong password. The two cases are deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken indicates a registration against an existing email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUserNotFound indicates the user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound indicates the requested profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrPostNotFound indicates the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound indicates the comment is not on the post.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrEntryNotFound indicates the experience or education entry is not
	// on the caller's profile.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrNotOwner indicates the resource exists but belongs to another
	// user. Never reported as a not-found condition.
	ErrNotOwner = errors.New("not resource owner")
	// ErrAlreadyLiked indicates the caller already likes the post.
	ErrAlreadyLiked = errors.New("post already liked")
	// ErrNotLiked indicates the caller does not like the post.
	ErrNotLiked = errors.New("post not liked")
)
