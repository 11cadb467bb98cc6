package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhub/internal/domain/ticket"
	apperrors "eduhub/internal/shared/errors"
)

func TestSubmitTicketUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SubmitTicketCommand
		wantErr bool
	}{
		{
			name: "valid submission",
			cmd: SubmitTicketCommand{
				OwnerID: 10,
				Subject: "Video playback fails",
				Body:    "Chapter 3 videos buffer forever.",
			},
		},
		{
			name:    "missing subject",
			cmd:     SubmitTicketCommand{OwnerID: 10, Body: "body"},
			wantErr: true,
		},
		{
			name:    "missing body",
			cmd:     SubmitTicketCommand{OwnerID: 10, Subject: "subject"},
			wantErr: true,
		},
		{
			name: "subject too long",
			cmd: SubmitTicketCommand{
				OwnerID: 10,
				Subject: strings.Repeat("a", 201),
				Body:    "body",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *ticket.Ticket
			repo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					if err := tk.SetID(42); err != nil {
						return err
					}
					saved = tk
					return nil
				},
			}

			uc := NewSubmitTicketUseCase(repo, &mockLogger{})
			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidationError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(42), result.TicketID)
			assert.Equal(t, "pending", result.Status)
			require.NotNil(t, saved)
			assert.Equal(t, tt.cmd.OwnerID, saved.OwnerID())
		})
	}
}

func TestSubmitTicketUseCase_SaveFailure(t *testing.T) {
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.New("connection refused")
		},
	}

	uc := NewSubmitTicketUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), SubmitTicketCommand{
		OwnerID: 10,
		Subject: "subject",
		Body:    "body",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save ticket")
}
