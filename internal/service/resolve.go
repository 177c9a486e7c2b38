package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tally/internal/credit"
)

// parseSeqRef accepts "7" or "#7".
func parseSeqRef(ref string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// resolveEventRef maps an event ID, seq number or lesson code to an event ID.
func resolveEventRef(reg *credit.Registry, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if l, ok := reg.Lesson(ref); ok {
		return l.Event.ID, nil
	}
	seq, isSeq := parseSeqRef(ref)
	var match string
	for _, g := range reg.Phases() {
		for _, l := range g.Lessons {
			e := l.Event
			if (isSeq && e.Seq == seq) || (!isSeq && e.Code != "" && strings.EqualFold(e.Code, ref)) {
				if match != "" && match != e.ID {
					return "", fmt.Errorf("event reference %q is ambiguous", ref)
				}
				match = e.ID
			}
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w %q", credit.ErrUnknownEvent, ref)
	}
	return match, nil
}

// resolvePhaseRef maps a phase ID, seq number or title to a phase ID.
func resolvePhaseRef(reg *credit.Registry, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if g, ok := reg.Phase(ref); ok {
		return g.Phase.ID, nil
	}
	seq, isSeq := parseSeqRef(ref)
	var match string
	for _, g := range reg.Phases() {
		p := g.Phase
		if (isSeq && p.Seq == seq) || (!isSeq && strings.EqualFold(p.Title, ref)) {
			if match != "" {
				return "", fmt.Errorf("phase reference %q is ambiguous", ref)
			}
			match = p.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w %q", credit.ErrUnknownPhase, ref)
	}
	return match, nil
}
