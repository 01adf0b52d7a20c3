package sim_test

import (
	"testing"

	"github.com/vovakirdan/isopuzzle/internal/core"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

func TestAudit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"clean", "P.D1\n...\nS1.#", nil},
		{"door behind closed door is fine", "P3K", nil},
		{"lowered bridge is fine", "PbK", nil},
		{"no start", "S2.", []string{"no player start", "(0,0): switch 2 has no door"}},
		{"door without switch", "P.D1", []string{"(2,0): door 1 has no switch"}},
		{"walled-off key", "P#K", []string{"(2,0): key is unreachable"}},
		{"walled-off switch", "P#S1\nD1##", []string{"(2,0): switch is unreachable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := sim.Audit(mustParse(t, tt.text))
			if len(issues) != len(tt.want) {
				t.Fatalf("Audit() = %v, want %v", issues, tt.want)
			}
			for i, is := range issues {
				if is.String() != tt.want[i] {
					t.Errorf("issue %d = %q, want %q", i, is.String(), tt.want[i])
				}
			}
		})
	}
}

func TestAuditLeavesDocumentAlone(t *testing.T) {
	doc := mustParse(t, "P3K\nb..")
	sim.Audit(doc)

	if d, _ := doc.DoorAt(core.C(1, 0)); d.Open {
		t.Error("audit should not open doors on the caller's document")
	}
	if doc.BridgeOn() {
		t.Error("audit should not raise the bridge on the caller's document")
	}
}
