package session

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Script formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParseScript decodes a list of events in JSON or YAML.
func ParseScript(data []byte, format string) ([]Event, error) {
	var events []Event
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &events)
	case FormatJSON, "":
		err = json.Unmarshal(data, &events)
	default:
		return nil, fmt.Errorf("unknown script format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s script: %w", format, err)
	}

	return events, nil
}

// Replay feeds events to the session in order. Rejected events are logged
// and counted; replay carries on like the page would.
func (s *Session) Replay(events []Event) (rejected int) {
	for i, ev := range events {
		if err := s.Handle(ev); err != nil {
			rejected++
			log.Warn().
				Err(err).
				Int("step", i).
				Str("type", ev.Type).
				Msg("Replay event rejected")
		}
	}

	return rejected
}
