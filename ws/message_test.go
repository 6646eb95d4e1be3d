package ws

import "testing"

func TestParseInboundConfirmation(t *testing.T) {
	raw := []byte(`{"topic":"confirmation","time":"123","message":{"account":"nano_abc","amount":"100","hash":"0000000000000000000000000000000000000000000000000000000000000001","confirmation_type":"active"}}`)
	ev, isAck, err := parseInbound(raw)
	if err != nil {
		t.Fatalf("parseInbound: %v", err)
	}
	if isAck {
		t.Fatal("expected a topic frame, got ack")
	}
	if ev.Kind != KindConfirmation {
		t.Fatalf("Kind = %v, want KindConfirmation", ev.Kind)
	}
	if ev.Confirmation.Account != "nano_abc" {
		t.Errorf("Account = %q", ev.Confirmation.Account)
	}
}

func TestParseInboundAckIsNotATopicFrame(t *testing.T) {
	raw := []byte(`{"ack":"subscribe","time":"123","id":"1"}`)
	_, isAck, err := parseInbound(raw)
	if err != nil {
		t.Fatalf("parseInbound: %v", err)
	}
	if !isAck {
		t.Error("expected an ack frame")
	}
}

func TestParseInboundUnknownTopicIsNotAnError(t *testing.T) {
	raw := []byte(`{"topic":"some_future_topic","message":{"foo":"bar"}}`)
	ev, isAck, err := parseInbound(raw)
	if err != nil {
		t.Fatalf("unknown topic should not error: %v", err)
	}
	if isAck {
		t.Fatal("unexpected ack")
	}
	if ev.Kind != KindUnknown {
		t.Errorf("Kind = %v, want KindUnknown", ev.Kind)
	}
}

func TestParseInboundActiveDifficulty(t *testing.T) {
	raw := []byte(`{"topic":"active_difficulty","message":{"network_minimum":"fffffff800000000","network_current":"fffffff800000000","multiplier":"1.0"}}`)
	ev, _, err := parseInbound(raw)
	if err != nil {
		t.Fatalf("parseInbound: %v", err)
	}
	if ev.Kind != KindActiveDifficulty {
		t.Fatalf("Kind = %v, want KindActiveDifficulty", ev.Kind)
	}
	if ev.ActiveDifficulty.NetworkMinimum != "fffffff800000000" {
		t.Errorf("NetworkMinimum = %q", ev.ActiveDifficulty.NetworkMinimum)
	}
}
