package probes

import (
	"reflect"
	"testing"

	"github.com/ossf/sourcerisk/internal/staticanalysis/parsing"
)

// stubProbe accepts nodes according to validate and counts Main calls.
type stubProbe struct {
	name     string
	validate []bool
	stop     bool
	calls    int
}

func (p *stubProbe) Name() string                     { return p.name }
func (p *stubProbe) ValidateNode(parsing.Node) []bool { return p.validate }
func (p *stubProbe) Main(parsing.Node, Options)       { p.calls++ }
func (p *stubProbe) BreakOnMatch() bool               { return p.stop }

func TestRunnerRun(t *testing.T) {
	tests := []struct {
		name        string
		probes      []*stubProbe
		wantMatched []string
		wantCalls   []int
	}{
		{
			name: "all accept",
			probes: []*stubProbe{
				{name: "a", validate: []bool{true}},
				{name: "b", validate: []bool{true, true}},
			},
			wantMatched: []string{"a", "b"},
			wantCalls:   []int{1, 1},
		},
		{
			name: "partial rejection",
			probes: []*stubProbe{
				{name: "a", validate: []bool{true, false}},
				{name: "b", validate: nil},
				{name: "c", validate: []bool{true}},
			},
			wantMatched: []string{"c"},
			wantCalls:   []int{0, 0, 1},
		},
		{
			name: "break on match",
			probes: []*stubProbe{
				{name: "a", validate: []bool{false}, stop: true},
				{name: "b", validate: []bool{true}, stop: true},
				{name: "c", validate: []bool{true}},
			},
			wantMatched: []string{"b"},
			wantCalls:   []int{0, 1, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner()
			for _, p := range tt.probes {
				r.Register(p)
			}
			matched := r.Run(literal("x"), Options{Analysis: &recorder{}})
			if !reflect.DeepEqual(matched, tt.wantMatched) {
				t.Errorf("Run() = %v, want %v", matched, tt.wantMatched)
			}
			for i, p := range tt.probes {
				if p.calls != tt.wantCalls[i] {
					t.Errorf("probe %s called %d times, want %d", p.name, p.calls, tt.wantCalls[i])
				}
			}
		})
	}
}

func TestDefaultRunner(t *testing.T) {
	r := Default()
	if got, want := r.Names(), []string{"isLiteral"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	rec := &recorder{}
	if matched := r.Run(literal("hello world"), Options{Analysis: rec}); len(matched) != 1 {
		t.Errorf("Run() on a string literal = %v, want [isLiteral]", matched)
	}
	if len(rec.literals) != 1 {
		t.Errorf("AnalyzeLiteral called %d times, want 1", len(rec.literals))
	}
	if matched := r.Run(literal(3.0), Options{Analysis: rec}); matched != nil {
		t.Errorf("Run() on a numeric literal = %v, want nil", matched)
	}
}
