package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"aronia-backend/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"store not configured", repository.ErrStoreNotConfigured, true},
		{"wrapped store not configured", fmt.Errorf("query failed: %w", repository.ErrStoreNotConfigured), true},
		{"client disconnected", mongo.ErrClientDisconnected, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"plain query error", errors.New("unknown operator $foo"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsUnavailable(tt.err))
		})
	}
}
