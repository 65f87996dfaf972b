// Package address builds and parses the routing strings used to send
// messages to simulation agents.
//
// An agent address is the group name, an underscore, the agent's numeric id
// and a trailing colon. A group address is the group name and a trailing
// colon, and reaches every member of the group:
//
//	address.AgentName("firm", 3)   // "firm_3:"
//	address.GroupAddress("firm")   // "firm:"
//
// The messaging layer routes on these exact strings, so the separator and
// the trailing colon must not change.
package address
