package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

func TestSequenceMarkup(t *testing.T) {
	got := SequenceMarkup(fixtureTrace())

	want := strings.Join([]string{
		"@startuml",
		"skinparam monochrome true",
		"participant 10_0_0_5_5000",
		"participant localhost_4000",
		"",
		`10_0_0_5_5000 <- localhost_4000: [ping] {"type":"ping"}`,
		`localhost_4000 -> 10_0_0_5_5000: [ack] {"type":"ack"}`,
		`localhost_4000 -> 10_0_0_5_5000: [gossip] {"type":"gossip"}`,
		"@enduml",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sequence markup mismatch (-want +got):\n%s", diff)
	}
}

func TestSequenceMarkupTruncatesInfo(t *testing.T) {
	long := strings.Repeat("x", 42)
	trace := model.Trace{
		{Source: "node1", Destination: "node2", Protocol: model.ProtocolPeerMessage, Type: "text", Info: long},
	}

	got := SequenceMarkup(trace)
	assert.Contains(t, got, "node1 <- node2: [text] "+strings.Repeat("x", 30)+"...")
	assert.NotContains(t, got, strings.Repeat("x", 31))
}

func TestSequenceMarkupEmpty(t *testing.T) {
	want := "@startuml\nskinparam monochrome true\n\n@enduml"
	assert.Equal(t, want, SequenceMarkup(nil))
}

func TestActivityMarkup(t *testing.T) {
	got := ActivityMarkup(fixtureTrace())

	want := strings.Join([]string{
		"@startuml",
		"skinparam monochrome true",
		"start",
		"#blue:Remote Host sends ping (0);",
		"#green:Local Host sends ack (1);",
		"#green:Local Host sends gossip (2);",
		"stop",
		"@enduml",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("activity markup mismatch (-want +got):\n%s", diff)
	}
}

func TestActivityMarkupEmpty(t *testing.T) {
	want := "@startuml\nskinparam monochrome true\nstart\nstop\n@enduml"
	assert.Equal(t, want, ActivityMarkup(nil))
}

func TestStateMarkup(t *testing.T) {
	got := StateMarkup(fixtureTrace())

	want := strings.Join([]string{
		"@startuml State Diagram for 10_0_0_5_5000",
		"skinparam monochrome true",
		"[*] --> Idle",
		"Idle --> Sent_ping_0 : Sends ping",
		"Sent_ping_0 --> Received_ack_1 : Receives ack",
		"Received_ack_1 --> Received_gossip_2 : Receives gossip",
		"Received_gossip_2 --> [*]",
		"@enduml",
		"\n",
		"@startuml State Diagram for localhost_4000",
		"skinparam monochrome true",
		"[*] --> Idle",
		"Idle --> Received_ping_0 : Receives ping",
		"Received_ping_0 --> Sent_ack_1 : Sends ack",
		"Sent_ack_1 --> Sent_gossip_2 : Sends gossip",
		"Sent_gossip_2 --> [*]",
		"@enduml",
		"\n",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("state markup mismatch (-want +got):\n%s", diff)
	}
}

func TestStateMarkupEmpty(t *testing.T) {
	assert.Equal(t, "", StateMarkup(nil))
}
