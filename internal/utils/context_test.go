package utils

import (
	"context"
	"testing"

	"github.com/fyan514/go-todo-service/models"
	"github.com/stretchr/testify/assert"
)

func TestGetIdentityFromContext(t *testing.T) {
	identity := models.Identity{Email: "fyan@gmail.com", UserID: 1, Role: "admin"}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, identity)

	got, ok := GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}
