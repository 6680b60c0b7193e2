package userctx

import "context"

// Context key type
type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userNameKey contextKey = "user_name"
)

// SetUserID adds the signed-in user's ID to the context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID retrieves the user ID from the context
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// SetUserName adds the signed-in user's display name to the context
func SetUserName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, userNameKey, name)
}

// GetUserName retrieves the display name from the context
func GetUserName(ctx context.Context) string {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "anonymous"
	}
	return name
}
