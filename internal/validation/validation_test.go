package validation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/phrazzld/post-api/internal/domain"
	"github.com/phrazzld/post-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string {
	return &s
}

func TestCreateProfile(t *testing.T) {
	tests := []struct {
		name       string
		input      validation.Input
		wantErrors map[string][]string
	}{
		{
			name:  "empty input reports title and body",
			input: validation.Input{},
			wantErrors: map[string][]string{
				"title": {"must be supplied"},
				"body":  {"must be supplied"},
			},
		},
		{
			name: "whitespace-only fields are treated as missing",
			input: validation.Input{
				Title: strptr("   "),
				Body:  strptr("\t\n"),
			},
			wantErrors: map[string][]string{
				"title": {"must be supplied"},
				"body":  {"must be supplied"},
			},
		},
		{
			name: "unparsable publication time",
			input: validation.Input{
				Title:       strptr("Title"),
				Body:        strptr("Body"),
				PublishedAt: strptr("not-a-date"),
			},
			wantErrors: map[string][]string{
				"publishedAt": {"must be a valid date"},
			},
		},
		{
			name: "valid without publication time",
			input: validation.Input{
				Title: strptr("Title"),
				Body:  strptr("Body"),
			},
		},
		{
			name: "valid with publication time",
			input: validation.Input{
				Title:       strptr("Title"),
				Body:        strptr("Body"),
				PublishedAt: strptr("2021-01-01T00:00:00Z"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, errs := validation.CreateProfile.Apply(tt.input)

			if tt.wantErrors == nil {
				require.Nil(t, errs)
				assert.Equal(t, *tt.input.Title, normalized.Title)
				assert.Equal(t, *tt.input.Body, normalized.Body)
				return
			}

			require.NotNil(t, errs)
			assert.Equal(t, len(tt.wantErrors), errs.Len())
			for field, messages := range tt.wantErrors {
				assert.Equal(t, messages, errs.Messages(field))
			}
		})
	}
}

func TestCreateProfileParsesPublicationTime(t *testing.T) {
	normalized, errs := validation.CreateProfile.Apply(validation.Input{
		Title:       strptr("Title"),
		Body:        strptr("Body"),
		PublishedAt: strptr("2021-01-01T00:00:00Z"),
	})

	require.Nil(t, errs)
	require.NotNil(t, normalized.PublishedAt)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), normalized.PublishedAt.UTC())
}

func TestCreateProfileAcceptsBareDate(t *testing.T) {
	normalized, errs := validation.CreateProfile.Apply(validation.Input{
		Title:       strptr("Title"),
		Body:        strptr("Body"),
		PublishedAt: strptr("2021-01-01"),
	})

	require.Nil(t, errs)
	require.NotNil(t, normalized.PublishedAt)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), normalized.PublishedAt.UTC())
}

func TestUpdateProfileRequiresPublicationTime(t *testing.T) {
	_, errs := validation.UpdateProfile.Apply(validation.Input{
		Title: strptr("Title"),
		Body:  strptr("Body"),
	})

	require.NotNil(t, errs)
	assert.Equal(t, []string{"must be a valid date"}, errs.Messages("publishedAt"))
}

func TestOverlay(t *testing.T) {
	publishedAt := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	existing, err := domain.NewPost("Old title", "Old body", publishedAt)
	require.NoError(t, err)

	t.Run("absent fields keep existing values", func(t *testing.T) {
		merged := validation.Overlay(existing, validation.Input{Title: strptr("New title")})

		require.NotNil(t, merged.Title)
		require.NotNil(t, merged.Body)
		require.NotNil(t, merged.PublishedAt)
		assert.Equal(t, "New title", *merged.Title)
		assert.Equal(t, "Old body", *merged.Body)

		ts, parseErr := time.Parse(time.RFC3339Nano, *merged.PublishedAt)
		require.NoError(t, parseErr)
		assert.True(t, ts.Equal(publishedAt))
	})

	t.Run("does not mutate the existing post", func(t *testing.T) {
		validation.Overlay(existing, validation.Input{Title: strptr("Other")})

		assert.Equal(t, "Old title", existing.Title)
		assert.Equal(t, "Old body", existing.Body)
	})

	t.Run("merged invalid patch surfaces errors", func(t *testing.T) {
		merged := validation.Overlay(existing, validation.Input{
			Title:       strptr(""),
			PublishedAt: strptr("not-a-date"),
		})

		_, errs := validation.UpdateProfile.Apply(merged)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"must be supplied"}, errs.Messages("title"))
		assert.Equal(t, []string{"must be a valid date"}, errs.Messages("publishedAt"))
		assert.Nil(t, errs.Messages("body"), "body was valid and keeps the stored value")
	})
}

func TestFieldErrorsAccumulateInRuleOrder(t *testing.T) {
	profile := validation.NewProfile(
		validation.Rule{
			Field:   "title",
			OK:      func(validation.Input) bool { return false },
			Message: "first failure",
		},
		validation.Rule{
			Field:   "title",
			OK:      func(validation.Input) bool { return false },
			Message: "second failure",
		},
		validation.Rule{
			Field:   "body",
			OK:      func(validation.Input) bool { return false },
			Message: "third failure",
		},
	)

	_, errs := profile.Apply(validation.Input{})

	require.NotNil(t, errs)
	assert.Equal(t, []string{"title", "body"}, errs.Fields())
	assert.Equal(t, []string{"first failure", "second failure"}, errs.Messages("title"))
}

func TestFieldErrorsMarshalJSONPreservesOrder(t *testing.T) {
	errs := &validation.FieldErrors{}
	errs.Add("title", "must be supplied")
	errs.Add("body", "must be supplied")
	errs.Add("title", "another problem")

	data, err := json.Marshal(errs)
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"title":["must be supplied","another problem"],"body":["must be supplied"]}`,
		string(data),
	)
	// JSONEq ignores key order; the raw bytes must list title first.
	assert.Equal(
		t,
		`{"title":["must be supplied","another problem"],"body":["must be supplied"]}`,
		string(data),
	)
}
