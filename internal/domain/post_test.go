package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/post-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	publishedAt := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)

	post, err := domain.NewPost("Title", "Body", publishedAt)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, "Title", post.Title)
	assert.Equal(t, "Body", post.Body)
	assert.Equal(t, publishedAt, post.PublishedAt)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt, "timestamps should match at creation")
	assert.WithinDuration(t, time.Now().UTC(), post.CreatedAt, time.Second)
}

func TestNewPostValidation(t *testing.T) {
	publishedAt := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		title       string
		body        string
		publishedAt time.Time
		wantErr     error
	}{
		{
			name:        "empty title",
			title:       "",
			body:        "Body",
			publishedAt: publishedAt,
			wantErr:     domain.ErrPostTitleEmpty,
		},
		{
			name:        "whitespace title",
			title:       "   ",
			body:        "Body",
			publishedAt: publishedAt,
			wantErr:     domain.ErrPostTitleEmpty,
		},
		{
			name:        "empty body",
			title:       "Title",
			body:        "",
			publishedAt: publishedAt,
			wantErr:     domain.ErrPostBodyEmpty,
		},
		{
			name:    "zero publication time",
			title:   "Title",
			body:    "Body",
			wantErr: domain.ErrPostPublishedAtZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := domain.NewPost(tt.title, tt.body, tt.publishedAt)
			assert.Nil(t, post)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
