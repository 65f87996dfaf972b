package address

import (
	"strconv"
	"strings"

	"github.com/vinayprograms/simkit/errors"
)

const (
	// Separator joins the group name and the agent id.
	Separator = "_"

	// Terminator ends every address.
	Terminator = ":"
)

// Kind distinguishes agent addresses from group addresses.
type Kind string

const (
	KindAgent Kind = "agent"
	KindGroup Kind = "group"
)

// Address is a parsed agent or group address.
type Address struct {
	Group string
	ID    int // meaningful only for KindAgent
	Kind  Kind
}

// AgentName returns the address of agent idn in group.
// Inputs are not validated.
func AgentName(group string, idn int) string {
	return group + Separator + strconv.Itoa(idn) + Terminator
}

// GroupAddress returns the broadcast address of group.
func GroupAddress(group string) string {
	return group + Terminator
}

// Roster returns the addresses of agents 0..n-1 of group.
func Roster(group string, n int) []string {
	if n <= 0 {
		return nil
	}
	names := make([]string, n)
	for i := range names {
		names[i] = AgentName(group, i)
	}
	return names
}

// String renders the address in canonical form.
func (a Address) String() string {
	if a.Kind == KindAgent {
		return AgentName(a.Group, a.ID)
	}
	return GroupAddress(a.Group)
}

// Parse splits s into its group and, for agent addresses, its id.
//
// A trailing "_<integer>:" with the id in canonical base 10 always reads as an agent address, so a group
// named "firm_3" cannot be told apart from agent 3 of "firm".
func Parse(s string) (Address, error) {
	body, ok := strings.CutSuffix(s, Terminator)
	if !ok {
		return Address{}, errors.InvalidAddress(s, "missing trailing "+strconv.Quote(Terminator))
	}
	if body == "" {
		return Address{}, errors.InvalidAddress(s, "empty group name")
	}

	if i := strings.LastIndex(body, Separator); i > 0 {
		suffix := body[i+len(Separator):]
		if id, err := strconv.Atoi(suffix); err == nil && strconv.Itoa(id) == suffix {
			return Address{Group: body[:i], ID: id, Kind: KindAgent}, nil
		}
	}
	return Address{Group: body, Kind: KindGroup}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsAgentAddress reports whether s parses as an agent address.
func IsAgentAddress(s string) bool {
	a, err := Parse(s)
	return err == nil && a.Kind == KindAgent
}

// IsGroupAddress reports whether s parses as a group address.
func IsGroupAddress(s string) bool {
	a, err := Parse(s)
	return err == nil && a.Kind == KindGroup
}
