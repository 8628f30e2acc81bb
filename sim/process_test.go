package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProcess_StartsNotArrivedWithFullBurst(t *testing.T) {
	p := NewProcess("P1", 200, 3, 7)

	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, 200, p.SizeKB)
	assert.Equal(t, int64(3), p.ArrivalTime)
	assert.Equal(t, int64(7), p.BurstTime)
	assert.Equal(t, int64(7), p.RemainingTime)
	assert.Equal(t, StateNotArrived, p.State)
	assert.Nil(t, p.Partition)
}

func TestNextState_LegalTransitions(t *testing.T) {
	cases := []struct {
		from  ProcessState
		event LifecycleEvent
		want  ProcessState
	}{
		{StateNotArrived, EventArrive, StateNew},
		{StateNew, EventAdmit, StateReady},
		{StateNew, EventSuspend, StateReadySuspended},
		{StateReadySuspended, EventAdmit, StateReady},
		{StateReady, EventDispatch, StateRunning},
		{StateRunning, EventPreempt, StateReady},
		{StateRunning, EventFinish, StateTerminated},
	}
	for _, tc := range cases {
		got, err := NextState(tc.from, tc.event)
		if err != nil {
			t.Errorf("NextState(%s, %s): unexpected error %v", tc.from, tc.event, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NextState(%s, %s) = %s, want %s", tc.from, tc.event, got, tc.want)
		}
	}
}

func TestNextState_IllegalTransitions(t *testing.T) {
	cases := []struct {
		from  ProcessState
		event LifecycleEvent
	}{
		{StateTerminated, EventArrive},   // terminated is terminal
		{StateTerminated, EventAdmit},    // no re-entry after termination
		{StateReadySuspended, EventDispatch}, // suspended processes never run directly
		{StateNew, EventDispatch},        // must obtain memory first
		{StateNotArrived, EventAdmit},    // must arrive first
		{StateReady, EventFinish},        // only the running process finishes
	}
	for _, tc := range cases {
		if _, err := NextState(tc.from, tc.event); err == nil {
			t.Errorf("NextState(%s, %s): expected error, got none", tc.from, tc.event)
		}
	}
}

func TestProcess_Apply_IllegalTransitionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("apply on illegal transition: expected panic, got none")
		}
	}()
	p := NewProcess("P1", 10, 0, 1)
	p.apply(EventFinish)
}

func TestProcess_Counted_OnlyForSlotHoldingStates(t *testing.T) {
	counted := map[ProcessState]bool{
		StateNotArrived:     false,
		StateNew:            false,
		StateReady:          true,
		StateReadySuspended: true,
		StateRunning:        true,
		StateTerminated:     false,
	}
	for state, want := range counted {
		p := &Process{ID: "P1", State: state}
		if got := p.Counted(); got != want {
			t.Errorf("Counted() in state %s = %v, want %v", state, got, want)
		}
	}
}

func TestProcess_TurnaroundAndWaiting(t *testing.T) {
	p := NewProcess("P1", 100, 2, 5)
	p.CompletionTime = 12

	assert.Equal(t, int64(10), p.TurnaroundTime())
	assert.Equal(t, int64(5), p.WaitingTime())
}

func TestProcess_String_IncludesState(t *testing.T) {
	p := NewProcess("P7", 45, 0, 3)
	assert.Contains(t, p.String(), "P7")
	assert.Contains(t, p.String(), string(StateNotArrived))
}
