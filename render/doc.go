// Package render presents a generated dungeon.
//
// Text writes five sections (STATE GRAPH, STATE WALK, ENCLAVES, MAP, GATES)
// styled with lipgloss; PlainStyles turns styling off for pipes and tests.
// YAML writes the same content as a structured document.
//
// States print one character per variable: F/T for binary variables and
// the digit for numeric ones. Conditions print "." for a free slot.
// Enclaves are lettered A, B, C… by ID; on the map "@" marks the start room.
package render
