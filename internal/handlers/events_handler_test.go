package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/slack-reminder-bot/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const reactionAddedBody = `{
	"token": "test-token",
	"team_id": "T123456789",
	"api_app_id": "A123",
	"type": "event_callback",
	"event_id": "Ev123",
	"event_time": 1704186100,
	"event": {
		"type": "reaction_added",
		"user": "U123",
		"reaction": "white_check_mark",
		"item_user": "UBOT",
		"item": {"type": "message", "channel": "C123456789", "ts": "1704186000.000100"},
		"event_ts": "1704186100.000200"
	}
}`

func TestSlackHandler_HandleEvents(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		secret     string
		buildMocks func(ctx context.Context, m test.ServiceMocks)
		wantCode   int
		wantBody   string
	}{
		{
			name:     "Should answer url verification challenge",
			body:     `{"token":"test-token","challenge":"3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P","type":"url_verification"}`,
			secret:   test.SigningSecret,
			wantCode: http.StatusOK,
			wantBody: "3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P",
		},
		{
			name:   "Should forward reaction to acknowledgement service",
			body:   reactionAddedBody,
			secret: test.SigningSecret,
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.AckServiceMock.EXPECT().
					HandleReaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ev entity.ReactionEvent) (bool, error) {
						assert.Equal(t, entity.MessageRef{Channel: "C123456789", Timestamp: "1704186000.000100"}, ev.Message)
						assert.Equal(t, "U123", ev.UserID)
						assert.Equal(t, "white_check_mark", ev.Emoji)
						assert.Equal(t, int64(1704186100), ev.Timestamp.Unix())
						return true, nil
					}).Times(1)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "Should acknowledge the event even when handling fails",
			body:   reactionAddedBody,
			secret: test.SigningSecret,
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.AckServiceMock.EXPECT().
					HandleReaction(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database is locked")).Times(1)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "Should ignore other events",
			body: `{"token":"test-token","team_id":"T123456789","type":"event_callback","event_id":"Ev124",
				"event":{"type":"app_mention","user":"U123","text":"<@UBOT> hi","ts":"1704186000.000300","channel":"C123456789","event_ts":"1704186000.000300"}}`,
			secret:   test.SigningSecret,
			wantCode: http.StatusOK,
		},
		{
			name:     "Should reject invalid signature",
			body:     reactionAddedBody,
			secret:   "wrong-secret",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "Should reject malformed payload",
			body:     `{"type":`,
			secret:   test.SigningSecret,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateEventRequest(t, tt.body, tt.secret)

			handler.HandleEvents(recorder, req)

			assert.Equal(t, tt.wantCode, recorder.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}
