package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLocal(t *testing.T) {
	assert.True(t, IsLocal("localhost:4000"))
	assert.True(t, IsLocal("localhost"))
	assert.False(t, IsLocal("10.0.0.5:5000"))
	assert.False(t, IsLocal("node1"))
}

func TestParticipantsSortedUnique(t *testing.T) {
	trace := Trace{
		{Source: "node2", Destination: "node1"},
		{Source: "node1", Destination: "node2"},
		{Source: "node2", Destination: "10.0.0.9:5000"},
	}

	assert.Equal(t, []string{"10.0.0.9:5000", "node1", "node2"}, trace.Participants())
}

func TestParticipantsEmpty(t *testing.T) {
	assert.Empty(t, Trace{}.Participants())
}

func TestBaseTimeFirstStamped(t *testing.T) {
	first := time.Date(2024, 5, 14, 12, 0, 1, 0, time.Local)
	later := time.Date(2024, 5, 14, 12, 0, 5, 0, time.Local)
	trace := Trace{
		{Source: "a", Destination: "b"},
		{Source: "a", Destination: "b", Timestamp: first},
		{Source: "b", Destination: "a", Timestamp: later},
	}

	assert.Equal(t, first, trace.BaseTime())
}

func TestBaseTimeNoClock(t *testing.T) {
	trace := Trace{{Source: "a", Destination: "b"}}
	assert.True(t, trace.BaseTime().IsZero())
}

func TestRelative(t *testing.T) {
	base := time.Date(2024, 5, 14, 12, 0, 0, 0, time.Local)
	trace := Trace{
		{Source: "a", Destination: "b", Timestamp: base},
		{Source: "b", Destination: "a", Timestamp: base.Add(1500 * time.Millisecond)},
		{Source: "a", Destination: "b"},
	}

	assert.Equal(t, 0.0, trace.Relative(trace[0]))
	assert.Equal(t, 1.5, trace.Relative(trace[1]))
	assert.Equal(t, 0.0, trace.Relative(trace[2]))
}

func TestRelativeWithoutBase(t *testing.T) {
	trace := Trace{{Source: "a", Destination: "b"}}
	r := Record{Source: "a", Destination: "b", Timestamp: time.Date(2024, 5, 14, 12, 0, 3, 0, time.Local)}

	assert.Equal(t, 0.0, trace.Relative(r))
}
