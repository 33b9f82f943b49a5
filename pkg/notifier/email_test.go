package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailService_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewEmailService(EmailConfig{
		Endpoint:   srv.URL,
		ServiceID:  "svc_1",
		TemplateID: "tpl_1",
		UserID:     "user_1",
	})

	err := svc.Send(context.Background(), TemplateFields{
		ToEmail:      "ops@example.com",
		ThreatDomain: "paypa1.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "svc_1", got["service_id"])
	assert.Equal(t, "tpl_1", got["template_id"])
	params, ok := got["template_params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "paypa1.com", params["threat_domain"])
}

func TestEmailService_SendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	svc := NewEmailService(EmailConfig{Endpoint: srv.URL})
	err := svc.Send(context.Background(), TemplateFields{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
