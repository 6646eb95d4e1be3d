// Package ws implements the websocket notification client: the
// subscribe/unsubscribe envelope, inbound topic dispatch into a tagged
// union, and single-owner send/receive framing over gorilla/websocket.
package ws

import (
	"encoding/json"

	"github.com/nanoshift/nanogo/types"
)

// Topic names recognized by the node's websocket event stream.
const (
	TopicConfirmation     = "confirmation"
	TopicVote             = "vote"
	TopicStoppedElection  = "stopped_election"
	TopicActiveDifficulty = "active_difficulty"
	TopicTelemetry        = "telemetry"
	TopicWork             = "work"
)

// SubscribeOptions narrows a confirmation/vote subscription.
type SubscribeOptions struct {
	Accounts              []string `json:"accounts,omitempty"`
	IncludeBlock          bool     `json:"include_block,omitempty"`
	IncludeElectionInfo   bool     `json:"include_election_info,omitempty"`
}

// subscribeEnvelope is the outbound {action, topic, ack?, options?} frame.
type subscribeEnvelope struct {
	Action  string            `json:"action"`
	Topic   string            `json:"topic"`
	Ack     bool              `json:"ack,omitempty"`
	Options *SubscribeOptions `json:"options,omitempty"`
}

// inboundEnvelope is the {topic, time?, message} shape for topic frames.
type inboundEnvelope struct {
	Topic   string          `json:"topic"`
	Time    string          `json:"time,omitempty"`
	Message json.RawMessage `json:"message"`
}

// ackEnvelope is the {ack, time, id?} shape for acknowledgement frames,
// which are parsed separately and never delivered as topic messages.
type ackEnvelope struct {
	Ack  string `json:"ack"`
	Time string `json:"time"`
	ID   string `json:"id,omitempty"`
}

// MessageKind tags which variant of the inbound tagged union Event holds.
type MessageKind int

const (
	KindUnknown MessageKind = iota
	KindConfirmation
	KindVote
	KindStoppedElection
	KindActiveDifficulty
	KindTelemetry
	KindWork
)

// Event is the tagged union of inbound topic messages. Topics outside the
// known set decode to KindUnknown and are not treated as errors.
// Acknowledgement frames never produce an Event (see parseInbound).
type Event struct {
	Kind MessageKind
	Time string

	Confirmation     *ConfirmationMessage
	Vote             *VoteMessage
	StoppedElection  *StoppedElectionMessage
	ActiveDifficulty *ActiveDifficultyMessage
	Telemetry        *TelemetryMessage
	Work             *WorkMessage

	RawTopic   string
	RawMessage json.RawMessage
}

// ConfirmationMessage is the "confirmation" topic payload.
type ConfirmationMessage struct {
	Account      string          `json:"account"`
	Amount       types.Raw       `json:"amount"`
	Hash         types.BlockHash `json:"hash"`
	Confirmation string          `json:"confirmation_type"`
	Block        json.RawMessage `json:"block,omitempty"`
}

// VoteMessage is the "vote" topic payload.
type VoteMessage struct {
	Account   string   `json:"account"`
	Signature string   `json:"signature"`
	Sequence  string   `json:"sequence"`
	Blocks    []string `json:"blocks"`
	Type      string   `json:"type"`
}

// StoppedElectionMessage is the "stopped_election" topic payload.
type StoppedElectionMessage struct {
	Hash types.BlockHash `json:"hash"`
}

// ActiveDifficultyMessage is the "active_difficulty" topic payload.
type ActiveDifficultyMessage struct {
	NetworkMinimum          string `json:"network_minimum"`
	NetworkCurrent          string `json:"network_current"`
	MultiplierPercentage    string `json:"multiplier"`
}

// TelemetryMessage is the "telemetry" topic payload.
type TelemetryMessage struct {
	BlockCount   string `json:"block_count"`
	PeerCount    string `json:"peer_count"`
	NodeID       string `json:"node_id"`
}

// WorkMessage is the "work" topic payload (generation progress/result).
type WorkMessage struct {
	Success string `json:"success"`
	Reason  string `json:"reason"`
	Hash    string `json:"hash"`
	Work    string `json:"work"`
}

// parseInbound dispatches a raw frame into either an ack (nil Event, true)
// or a topic Event (non-nil, false).
func parseInbound(raw []byte) (*Event, bool, error) {
	var ack ackEnvelope
	if err := json.Unmarshal(raw, &ack); err == nil && ack.Ack != "" {
		return nil, true, nil
	}

	var env inboundEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false, err
	}

	ev := &Event{Time: env.Time, RawTopic: env.Topic, RawMessage: env.Message}

	switch env.Topic {
	case TopicConfirmation:
		var m ConfirmationMessage
		if err := json.Unmarshal(env.Message, &m); err == nil {
			ev.Kind = KindConfirmation
			ev.Confirmation = &m
		}
	case TopicVote:
		var m VoteMessage
		if err := json.Unmarshal(env.Message, &m); err == nil {
			ev.Kind = KindVote
			ev.Vote = &m
		}
	case TopicStoppedElection:
		var m StoppedElectionMessage
		if err := json.Unmarshal(env.Message, &m); err == nil {
			ev.Kind = KindStoppedElection
			ev.StoppedElection = &m
		}
	case TopicActiveDifficulty:
		var m ActiveDifficultyMessage
		if err := json.Unmarshal(env.Message, &m); err == nil {
			ev.Kind = KindActiveDifficulty
			ev.ActiveDifficulty = &m
		}
	case TopicTelemetry:
		var m TelemetryMessage
		if err := json.Unmarshal(env.Message, &m); err == nil {
			ev.Kind = KindTelemetry
			ev.Telemetry = &m
		}
	case TopicWork:
		var m WorkMessage
		if err := json.Unmarshal(env.Message, &m); err == nil {
			ev.Kind = KindWork
			ev.Work = &m
		}
	default:
		ev.Kind = KindUnknown
	}

	return ev, false, nil
}
