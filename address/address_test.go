package address

import (
	"math"
	"strconv"
	"testing"

	"github.com/vinayprograms/simkit/errors"
)

func TestAgentName(t *testing.T) {
	tests := []struct {
		group string
		id    int
		want  string
	}{
		{"firm", 3, "firm_3:"},
		{"household", 0, "household_0:"},
		{"bank", -1, "bank_-1:"},
		{"", 7, "_7:"},
		{"firm", math.MaxInt, "firm_" + strconv.Itoa(math.MaxInt) + ":"},
	}
	for _, tt := range tests {
		if got := AgentName(tt.group, tt.id); got != tt.want {
			t.Errorf("AgentName(%q, %d) = %q, want %q", tt.group, tt.id, got, tt.want)
		}
	}
}

func TestGroupAddress(t *testing.T) {
	if got := GroupAddress("firm"); got != "firm:" {
		t.Errorf("GroupAddress(firm) = %q, want %q", got, "firm:")
	}
	if got := GroupAddress("firm"); got != GroupAddress("firm") {
		t.Error("GroupAddress should be deterministic")
	}
}

func TestAgentNeverEqualsGroup(t *testing.T) {
	for _, g := range []string{"", "firm", "firm_3", "a:b", "_"} {
		for _, id := range []int{-10, -1, 0, 1, 3, 1000} {
			if AgentName(g, id) == GroupAddress(g) {
				t.Errorf("AgentName(%q, %d) equals GroupAddress(%q)", g, id, g)
			}
		}
	}
}

func TestRoster(t *testing.T) {
	got := Roster("firm", 3)
	want := []string{"firm_0:", "firm_1:", "firm_2:"}
	if len(got) != len(want) {
		t.Fatalf("Roster len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Roster[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if Roster("firm", 0) != nil || Roster("firm", -2) != nil {
		t.Error("Roster with n <= 0 should be nil")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Address
	}{
		{"firm_3:", Address{Group: "firm", ID: 3, Kind: KindAgent}},
		{"firm:", Address{Group: "firm", Kind: KindGroup}},
		{"bank_-1:", Address{Group: "bank", ID: -1, Kind: KindAgent}},
		{"central_bank_0:", Address{Group: "central_bank", ID: 0, Kind: KindAgent}},
		{"central_bank:", Address{Group: "central_bank", Kind: KindGroup}},
		{"firm_x:", Address{Group: "firm_x", Kind: KindGroup}},
		{"firm_:", Address{Group: "firm_", Kind: KindGroup}},
		{"_3:", Address{Group: "_3", Kind: KindGroup}},
		{"firm_03:", Address{Group: "firm_03", Kind: KindGroup}},
		{"firm_+3:", Address{Group: "firm_+3", Kind: KindGroup}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "firm", "firm_3", ":"} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) should fail", in)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidAddress) {
			t.Errorf("Parse(%q) code = %v, want %v", in, errors.Code(err), errors.ErrCodeInvalidAddress)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, g := range []string{"firm", "household", "central_bank"} {
		for _, id := range []int{0, 1, 42} {
			a := MustParse(AgentName(g, id))
			if a.Kind != KindAgent || a.Group != g || a.ID != id {
				t.Errorf("MustParse(AgentName(%q, %d)) = %+v", g, id, a)
			}
		}
		if a := MustParse(GroupAddress(g)); a.Kind != KindGroup || a.Group != g {
			t.Errorf("MustParse(GroupAddress(%q)) = %+v", g, a)
		}
	}
}

func TestParse_GroupSuffixAmbiguity(t *testing.T) {
	// A group whose name ends in _<digits> reads as an agent address.
	a := MustParse(GroupAddress("firm_3"))
	if a.Kind != KindAgent || a.Group != "firm" || a.ID != 3 {
		t.Errorf("MustParse(firm_3:) = %+v", a)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("firm")
}

func TestIsAgentOrGroupAddress(t *testing.T) {
	if !IsAgentAddress("firm_3:") || IsGroupAddress("firm_3:") {
		t.Error("firm_3: is an agent address")
	}
	if !IsGroupAddress("firm:") || IsAgentAddress("firm:") {
		t.Error("firm: is a group address")
	}
	if IsAgentAddress("firm") || IsGroupAddress("firm") {
		t.Error("firm is not an address")
	}
}
