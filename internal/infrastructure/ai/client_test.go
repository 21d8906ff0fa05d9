package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rudereminder/internal/domain/constant"
	"rudereminder/internal/pkg/logger"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, status int, content string, captured *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if captured != nil {
			_ = json.Unmarshal(body, captured)
		}
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:     "chatcmpl-1",
			Object: "chat.completion",
			Model:  "test-model",
			Choices: []openai.ChatCompletionChoice{{
				Index:        0,
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
				FinishReason: openai.FinishReasonStop,
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testContext() PromptContext {
	return PromptContext{Task: "finish report", Category: constant.CategoryWork, Rudeness: 5, TimeOfDay: "morning", Culture: "asian"}
}

func TestGenerateResponsesParsesNumberedList(t *testing.T) {
	var req openai.ChatCompletionRequest
	srv := completionServer(t, http.StatusOK, "Here you go:\n1. Finish the report, slacker.\n2) \"Your boss is waiting.\"\n3. Stop hiding from that report.", &req)
	c := New("test-key", srv.URL+"/v1", "test-model", logger.NewNop())

	out, err := c.GenerateResponses(context.Background(), testContext(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Finish the report, slacker.", "Your boss is waiting.", "Stop hiding from that report."}, out)

	require.Len(t, req.Messages, 2)
	assert.Contains(t, req.Messages[0].Content, "non-repetitive")
	assert.Contains(t, req.Messages[1].Content, "harshly motivating and unfiltered")
	assert.Contains(t, req.Messages[1].Content, "asian")
	assert.Equal(t, "test-model", req.Model)
}

func TestGenerateResponsesPadsShortOutput(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "1. Do the thing.", nil)
	c := New("test-key", srv.URL+"/v1", "test-model", logger.NewNop())

	out, err := c.GenerateResponses(context.Background(), testContext(), 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Do the thing.", out[0])
	assert.Equal(t, "Seriously, do the thing.", out[1])
	assert.Equal(t, "Listen up: do the thing.", out[2])
}

func TestGenerateResponsesFallsBackOnServerError(t *testing.T) {
	srv := completionServer(t, http.StatusInternalServerError, "", nil)
	c := New("test-key", srv.URL+"/v1", "test-model", logger.NewNop())

	out, err := c.GenerateResponses(context.Background(), testContext(), 3)
	require.NoError(t, err)
	assert.Equal(t, FallbackResponses(testContext()), out)
	assert.Len(t, out, 6)
}

func TestGenerateResponsesWithoutKeySkipsNetwork(t *testing.T) {
	c := New("", "http://127.0.0.1:1/v1", "test-model", logger.NewNop())
	assert.False(t, c.Enabled())

	pc := testContext()
	pc.Rudeness = 2
	out, err := c.GenerateResponses(context.Background(), pc, 5)
	require.NoError(t, err)
	assert.Len(t, out, 4)
	for _, s := range out {
		assert.Contains(t, s, "finish report")
	}
}

func TestGenerateQuote(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "\"Done is better than perfect.\"\n", nil)
	c := New("test-key", srv.URL+"/v1", "test-model", logger.NewNop())

	q, err := c.GenerateQuote(context.Background(), testContext())
	require.NoError(t, err)
	assert.Equal(t, "Done is better than perfect.", q)
}

func TestGenerateQuoteFallsBackLocally(t *testing.T) {
	srv := completionServer(t, http.StatusBadGateway, "", nil)
	c := New("test-key", srv.URL+"/v1", "test-model", logger.NewNop())

	q, err := c.GenerateQuote(context.Background(), testContext())
	require.NoError(t, err)
	assert.NotEmpty(t, q)
}

func TestParseNumberedListPlainLines(t *testing.T) {
	assert.Equal(t, []string{"alpha", "beta"}, parseNumberedList("alpha\n\n beta \n"))
}

func TestToneLabel(t *testing.T) {
	assert.Equal(t, "gentle and encouraging", ToneLabel(1))
	assert.Equal(t, "harshly motivating and unfiltered", ToneLabel(5))
	assert.True(t, strings.Contains(ToneLabel(3), "sarcastic"))
}
