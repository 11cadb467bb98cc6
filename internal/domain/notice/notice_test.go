package notice

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotice(t *testing.T) {
	tests := []struct {
		name     string
		authorID uint
		title    string
		body     string
		wantErr  string
	}{
		{
			name:     "valid notice",
			authorID: 1,
			title:    "Exam schedule released",
			body:     "The **final exam** schedule is now available.",
		},
		{
			name:     "missing author",
			authorID: 0,
			title:    "Exam schedule released",
			body:     "body",
			wantErr:  "author ID",
		},
		{
			name:     "empty title",
			authorID: 1,
			title:    "",
			body:     "body",
			wantErr:  "title is required",
		},
		{
			name:     "title too long",
			authorID: 1,
			title:    strings.Repeat("a", 201),
			body:     "body",
			wantErr:  "maximum length",
		},
		{
			name:     "empty body",
			authorID: 1,
			title:    "Exam schedule released",
			body:     "",
			wantErr:  "body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNotice(tt.authorID, tt.title, tt.body)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusDraft, n.Status())
			assert.Nil(t, n.PublishedAt())
			assert.False(t, n.IsPublished())
		})
	}
}

func TestNoticePublish(t *testing.T) {
	n, err := NewNotice(1, "Holiday announcement", "Classes resume on Monday.")
	require.NoError(t, err)

	n.Publish()
	assert.Equal(t, StatusPublished, n.Status())
	require.NotNil(t, n.PublishedAt())

	firstPublished := *n.PublishedAt()
	time.Sleep(time.Millisecond)
	n.Publish()
	assert.Equal(t, firstPublished, *n.PublishedAt(), "republish is a no-op")
}

func TestNoticeUpdateContent(t *testing.T) {
	n, err := NewNotice(1, "Old title", "Old body")
	require.NoError(t, err)

	require.NoError(t, n.UpdateContent("New title", "New body"))
	assert.Equal(t, "New title", n.Title())
	assert.Equal(t, "New body", n.Body())

	assert.Error(t, n.UpdateContent("", "New body"))
}

func TestReconstructNotice(t *testing.T) {
	now := time.Now().UTC()
	n, err := ReconstructNotice(5, 1, "Title", "Body", StatusPublished, &now, now, now)
	require.NoError(t, err)
	assert.True(t, n.IsPublished())

	_, err = ReconstructNotice(0, 1, "Title", "Body", StatusDraft, nil, now, now)
	assert.Error(t, err)

	_, err = ReconstructNotice(5, 1, "Title", "Body", NoticeStatus("archived"), nil, now, now)
	assert.Error(t, err)
}
