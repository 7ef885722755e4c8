package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"notably-be/internal/pkg/serverutils"
	"notably-be/internal/repository/memory"
	"notably-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newChatbotTestApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	svc := service.NewChatbotService(
		memory.NewChatHistoryRepository(50),
		memory.NewSessionRepository(),
		nil,
		"CHAT_EXCHANGE",
	)
	NewChatbotController(svc).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, url string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestChatEndpointReplies(t *testing.T) {
	app := newChatbotTestApp()

	resp, body := postJSON(t, app, "/chat", map[string]string{"message": "hello"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Hello! How can I assist you today?", data["response"])
}

func TestChatEndpointRejectsMissingMessage(t *testing.T) {
	app := newChatbotTestApp()

	tests := []struct {
		name    string
		payload interface{}
	}{
		{name: "empty body", payload: map[string]string{}},
		{name: "blank message", payload: map[string]string{"message": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, app, "/chat", tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestChatHistoryEndpoint(t *testing.T) {
	app := newChatbotTestApp()

	for _, msg := range []string{"hello", "price"} {
		resp, _ := postJSON(t, app, "/chat", map[string]string{"message": msg})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/chat/history", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["data"].([]interface{})
	assert.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.Equal(t, "hello", first["user"])
	assert.Equal(t, "Hello! How can I assist you today?", first["bot"])
}
