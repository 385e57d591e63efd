package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Narasimha40-dev/DAIRY/internal/config"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
)

type sentText struct{ to, body string }

type fakeClient struct {
	sent []sentText
	err  error
}

func (f *fakeClient) SendText(_ context.Context, to, body string) (string, error) {
	f.sent = append(f.sent, sentText{to: to, body: body})
	return "wamid", f.err
}

type fakeDispatcher struct {
	commands []models.Command
	err      error
}

func (f *fakeDispatcher) HandleCommand(_ context.Context, cmd models.Command, _ string) (string, error) {
	f.commands = append(f.commands, cmd)
	return "reply to " + string(cmd.Type), f.err
}

func payload(t *testing.T, raw string) models.WebhookPayload {
	t.Helper()
	var p models.WebhookPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return p
}

const inbound = `{"object":"whatsapp_business_account","entry":[{"id":"1","changes":[{"field":"messages","value":{
	"messaging_product":"whatsapp",
	"messages":[
		{"from":"919876543210","id":"m1","type":"text","text":{"body":"/milk Ravi Kothur Cow 10 40"}},
		{"from":"919876543210","id":"m2","type":"image"},
		{"from":"919800000000","id":"m3","type":"interactive","interactive":{"type":"button_reply","button_reply":{"id":"/summary","title":"Summary"}}}
	],
	"statuses":[{"id":"m0","status":"read","recipient_id":"919876543210"}]
}}]}]}`

func TestHandleWebhookRepliesToEachCommand(t *testing.T) {
	c := &fakeClient{}
	d := &fakeDispatcher{}
	svc := NewMetaWhatsAppService(config.WhatsAppConfig{VerifyToken: "secret"}, c, d, nil)

	if err := svc.HandleWebhook(context.Background(), payload(t, inbound)); err != nil {
		t.Fatalf("HandleWebhook unexpected error: %v", err)
	}

	if len(d.commands) != 2 || d.commands[0].Type != models.CommandMilk || d.commands[1].Type != models.CommandSummary {
		t.Fatalf("unexpected dispatched commands %+v", d.commands)
	}
	if len(c.sent) != 2 || c.sent[0].to != "919876543210" || c.sent[1].body != "reply to summary" {
		t.Fatalf("unexpected replies %+v", c.sent)
	}
}

func TestHandleWebhookReturnsFirstError(t *testing.T) {
	c := &fakeClient{err: errors.New("rate limited")}
	svc := NewMetaWhatsAppService(config.WhatsAppConfig{}, c, &fakeDispatcher{}, nil)

	err := svc.HandleWebhook(context.Background(), payload(t, inbound))
	if err == nil || err.Error() != "rate limited" {
		t.Fatalf("expected send error, got %v", err)
	}
	if len(c.sent) != 2 {
		t.Fatalf("expected processing to continue after a failure, got %d sends", len(c.sent))
	}
}

func TestVerifyWebhookToken(t *testing.T) {
	svc := NewMetaWhatsAppService(config.WhatsAppConfig{VerifyToken: "secret"}, &fakeClient{}, &fakeDispatcher{}, nil)

	tests := []struct {
		name    string
		mode    string
		token   string
		wantErr error
	}{
		{name: "valid", mode: "subscribe", token: "secret"},
		{name: "missing", mode: "", token: "", wantErr: ErrMissingVerification},
		{name: "wrong token", mode: "subscribe", token: "nope", wantErr: ErrInvalidVerifyToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			challenge, err := svc.VerifyWebhookToken(tt.mode, tt.token, "123")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && challenge != "123" {
				t.Fatalf("expected challenge echo, got %q", challenge)
			}
		})
	}

	if _, err := svc.VerifyWebhookToken("unsubscribe", "secret", "1"); err == nil {
		t.Fatalf("expected unsupported mode to fail")
	}
}

func TestSendOutbound(t *testing.T) {
	c := &fakeClient{}
	svc := NewMetaWhatsAppService(config.WhatsAppConfig{}, c, &fakeDispatcher{}, nil)
	if err := svc.SendOutbound(context.Background(), models.OutboundMessageRequest{To: "91", Message: "report"}); err != nil {
		t.Fatalf("SendOutbound unexpected error: %v", err)
	}
	if len(c.sent) != 1 || c.sent[0].body != "report" {
		t.Fatalf("unexpected sends %+v", c.sent)
	}
}
