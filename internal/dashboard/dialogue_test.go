package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"brandlens/internal/insight"
	"brandlens/internal/llm"
	"brandlens/internal/logging"
	"brandlens/internal/model"
)

type stubProvider struct {
	client *llm.MockClient
	err    error
	calls  int
}

func (s *stubProvider) GetClient(provider llm.Provider, modelID string) (llm.Client, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.client, nil
}

func transcript(n int) []insight.ConversationMessage {
	msgs := make([]insight.ConversationMessage, 0, n)
	for i := 0; i < n; i++ {
		sender := insight.SenderUser
		if i%2 == 1 {
			sender = insight.SenderAI
		}
		msgs = append(msgs, insight.ConversationMessage{
			ID:      fmt.Sprintf("m%d", i),
			Content: fmt.Sprintf("message %d", i),
			Sender:  sender,
		})
	}
	return msgs
}

func TestIsComplete(t *testing.T) {
	require.True(t, IsComplete(CompletionReply))
	require.True(t, IsComplete("Great, I now have enough context to proceed."))
	require.True(t, IsComplete("That is sufficient information for me."))
	require.True(t, IsComplete("I believe I have enough information now."))
	require.False(t, IsComplete("What time period should the dashboard cover?"))
}

func TestQuestionResponsePairsCountsExchanges(t *testing.T) {
	require.Equal(t, 0, questionResponsePairs(nil))
	require.Equal(t, 0, questionResponsePairs(transcript(1)))
	require.Equal(t, 0, questionResponsePairs(transcript(2)))
	require.Equal(t, 1, questionResponsePairs(transcript(3)))
	require.Equal(t, 3, questionResponsePairs(transcript(7)))
}

func TestNextQuestionReturnsBackendReply(t *testing.T) {
	provider := &stubProvider{client: &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return &llm.CompletionResponse{Content: "  What time period should the dashboard cover?  "}, nil
		},
	}}
	s := NewService(provider)

	reply, complete, err := s.NextQuestion(context.Background(), "Track brand awareness", insight.Context{ModelName: model.GPT4o}, transcript(1))
	require.NoError(t, err)
	require.False(t, complete)
	require.Equal(t, "What time period should the dashboard cover?", reply)
}

func TestNextQuestionDetectsCompletion(t *testing.T) {
	provider := &stubProvider{client: &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return &llm.CompletionResponse{Content: CompletionReply}, nil
		},
	}}
	s := NewService(provider)

	reply, complete, err := s.NextQuestion(context.Background(), "Track brand awareness", insight.Context{ModelName: model.GPT4o}, transcript(7))
	require.NoError(t, err)
	require.True(t, complete)
	require.Equal(t, CompletionReply, reply)
}

func TestNextQuestionMentionsQuestionCountInPrompt(t *testing.T) {
	mock := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return &llm.CompletionResponse{Content: "Another question?"}, nil
		},
	}
	s := NewService(&stubProvider{client: mock})

	_, _, err := s.NextQuestion(context.Background(), "Track brand awareness", insight.Context{ModelName: model.GPT4o}, transcript(7))
	require.NoError(t, err)

	reqs := mock.Requests()
	require.Len(t, reqs, 1)
	user := reqs[0].Messages[len(reqs[0].Messages)-1].Content
	require.Contains(t, user, "Number of questions asked so far: 3")
	require.Contains(t, user, "you have asked at least 3 questions")
}

func TestNextQuestionForcesCompletionAtCeiling(t *testing.T) {
	provider := &stubProvider{client: &llm.MockClient{}}
	s := NewService(provider)

	reply, complete, err := s.NextQuestion(context.Background(), "Track brand awareness", insight.Context{ModelName: model.GPT4o}, transcript(11))
	require.NoError(t, err)
	require.True(t, complete)
	require.Equal(t, CompletionReply, reply)
	require.Zero(t, provider.calls, "no backend call once the ceiling is reached")
}

func TestNextQuestionFallsBackOnBackendError(t *testing.T) {
	provider := &stubProvider{client: &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return nil, errors.New("down")
		},
	}}
	s := NewService(provider)

	reply, complete, err := s.NextQuestion(context.Background(), "Track brand awareness", insight.Context{ModelName: model.GPT4o}, transcript(1))
	require.Error(t, err)
	require.False(t, complete)
	require.Equal(t, ClarifyFallback, reply)
}

func TestWithLoggerAcceptsInjectedOrNil(t *testing.T) {
	provider := &stubProvider{err: errors.New("down")}

	s := NewService(provider).WithLogger(logging.Nop())
	reply, complete, err := s.NextQuestion(context.Background(), "Track brand awareness", insight.Context{ModelName: model.GPT4o}, transcript(1))
	require.Error(t, err)
	require.False(t, complete)
	require.Equal(t, ClarifyFallback, reply)

	s = NewService(provider).WithLogger(nil)
	reply, _, err = s.NextQuestion(context.Background(), "Track brand awareness", insight.Context{ModelName: model.GPT4o}, transcript(1))
	require.Error(t, err)
	require.Equal(t, ClarifyFallback, reply)
}

func TestFormatConversationHistoryLabelsSenders(t *testing.T) {
	history := FormatConversationHistory([]insight.ConversationMessage{
		{Sender: insight.SenderUser, Content: "Track awareness"},
		{Sender: insight.SenderAI, Content: "For what period?"},
	})
	require.Equal(t, strings.Join([]string{
		"User: Track awareness",
		"AI: For what period?",
	}, "\n\n"), history)
}
