package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

func TestWriteSequence(t *testing.T) {
	var buf bytes.Buffer
	WriteSequence(&buf, fixtureTrace())

	want := strings.Join([]string{
		"ASCII Sequence Diagram:",
		"-----------------------",
		"5000           4000           ",
		"------------------------------",
		"|[ping]-------->              ",
		"<[ack]---------|              ",
		"<[gossip]------|              ",
		"-----------------------",
		"",
	}, "\n")

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("sequence output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSequenceEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteSequence(&buf, nil)

	want := strings.Join([]string{
		"ASCII Sequence Diagram:",
		"-----------------------",
		"",
		"",
		"-----------------------",
		"",
	}, "\n")

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("empty sequence mismatch (-want +got):\n%s", diff)
	}
}

// A row's width stops at the rightmost involved participant, so lifelines
// further right drop off that row.
func TestWriteSequenceShortRow(t *testing.T) {
	trace := model.Trace{
		{Source: "alpha", Destination: "beta", Protocol: model.ProtocolPeerMessage, Type: "x", Info: "m"},
	}
	trace = append(trace, model.Record{Source: "alpha", Destination: "carol", Protocol: model.ProtocolPeerMessage, Type: "y", Info: "m"})

	var buf bytes.Buffer
	WriteSequence(&buf, trace)

	want := strings.Join([]string{
		"ASCII Sequence Diagram:",
		"-----------------------",
		"alpha          beta           carol          ",
		strings.Repeat("-", 45),
		"|[x]----------->              ",
		"|[y]-------------------------->              ",
		"-----------------------",
		"",
	}, "\n")

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("sequence rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteActivity(t *testing.T) {
	var buf bytes.Buffer
	WriteActivity(&buf, fixtureTrace())

	want := strings.Join([]string{
		"ASCII Activity Flow:",
		"---------------------",
		"000: IN ping (10.0.0.5:5000 -> localhost:4000)",
		"001: OUT ack (localhost:4000 -> 10.0.0.5:5000)",
		"002: OUT gossip (localhost:4000 -> 10.0.0.5:5000)",
		"---------------------",
		"",
	}, "\n")

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("activity output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteActivityEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteActivity(&buf, nil)

	want := "ASCII Activity Flow:\n---------------------\n---------------------\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("empty activity mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteStates(t *testing.T) {
	var buf bytes.Buffer
	WriteStates(&buf, fixtureTrace())

	want := strings.Join([]string{
		"ASCII State Flow (per participant):",
		"-----------------------------------",
		"",
		"Participant: 10.0.0.5:5000",
		"  Initial State: Idle",
		"  Idle --(Sends ping)--> Sent_ping_0",
		"  Sent_ping_0 --(Receives ack)--> Received_ack_1",
		"  Received_ack_1 --(Receives gossip)--> Received_gossip_2",
		"  Received_gossip_2 --(End)--> Final",
		"",
		"Participant: localhost:4000",
		"  Initial State: Idle",
		"  Idle --(Receives ping)--> Received_ping_0",
		"  Received_ping_0 --(Sends ack)--> Sent_ack_1",
		"  Sent_ack_1 --(Sends gossip)--> Sent_gossip_2",
		"  Sent_gossip_2 --(End)--> Final",
		"-----------------------------------",
		"",
	}, "\n")

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("state output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteStatesEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteStates(&buf, nil)

	want := "ASCII State Flow (per participant):\n-----------------------------------\n-----------------------------------\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("empty state mismatch (-want +got):\n%s", diff)
	}
}

// A participant both sending and receiving in the same record steps only
// once, as a send.
func TestStateSelfMessage(t *testing.T) {
	trace := model.Trace{
		{Source: "node1", Destination: "node1", Protocol: model.ProtocolPeerMessage, Type: "loop", Info: "m"},
	}

	var buf bytes.Buffer
	WriteStates(&buf, trace)
	out := buf.String()

	if !strings.Contains(out, "  Idle --(Sends loop)--> Sent_loop_0\n") {
		t.Errorf("missing send transition:\n%s", out)
	}
	if strings.Contains(out, "Receives loop") {
		t.Errorf("self message counted twice:\n%s", out)
	}
}
