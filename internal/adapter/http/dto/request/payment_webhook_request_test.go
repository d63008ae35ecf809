package request

import (
	"encoding/json"
	"testing"
)

func TestPaymentWebhookRequest_IsPaymentEvent(t *testing.T) {
	cases := []struct {
		typ  string
		want bool
	}{
		{"payment", true},
		{" Payment ", true},
		{"PAYMENT", true},
		{"plan", false},
		{"", false},
	}
	for _, tc := range cases {
		r := PaymentWebhookRequest{Type: tc.typ}
		if got := r.IsPaymentEvent(); got != tc.want {
			t.Fatalf("IsPaymentEvent(%q) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

func TestPaymentWebhookRequest_ResolvePaymentID(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "numeric id", body: `{"type":"payment","data":{"id":12345}}`, want: "12345"},
		{name: "string id", body: `{"type":"payment","data":{"id":"pay-1"}}`, want: "pay-1"},
		{name: "quoted with spaces", body: `{"type":"payment","data":{"id":" pay-1 "}}`, want: "pay-1"},
		{name: "null id", body: `{"type":"payment","data":{"id":null}}`, want: ""},
		{name: "missing id", body: `{"type":"payment","data":{}}`, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r PaymentWebhookRequest
			if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.ResolvePaymentID(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
