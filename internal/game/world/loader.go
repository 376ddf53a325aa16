package world

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dragons-escape/content"
)

// yamlZoneFile is the top-level YAML structure for zone files.
type yamlZoneFile struct {
	Zone yamlZone `yaml:"zone"`
}

// yamlZone is the YAML representation of a zone.
type yamlZone struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	Description  string     `yaml:"description"`
	StartRoom    string     `yaml:"start_room"`
	TreasureRoom string     `yaml:"treasure_room"`
	Rooms        []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Art         string     `yaml:"art"`
	Exits       []yamlExit `yaml:"exits"`
}

// yamlExit is the YAML representation of an exit.
type yamlExit struct {
	Direction string `yaml:"direction"`
	Target    string `yaml:"target"`
}

// LoadZoneFromBytes parses and validates a zone from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the zone schema.
// Postcondition: Returns a validated Zone or a non-nil error.
func LoadZoneFromBytes(data []byte) (*Zone, error) {
	var file yamlZoneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing zone YAML: %w", err)
	}

	zone, err := convertYAMLZone(file.Zone)
	if err != nil {
		return nil, err
	}
	if err := zone.Validate(); err != nil {
		return nil, fmt.Errorf("validating zone: %w", err)
	}

	return zone, nil
}

// LoadCastle builds the Registry for the embedded castle.
//
// Postcondition: Returns a Registry whose exits all resolve, or a non-nil error.
func LoadCastle() (*Registry, error) {
	zone, err := LoadZoneFromBytes(content.Castle())
	if err != nil {
		return nil, fmt.Errorf("loading castle: %w", err)
	}
	reg, err := NewRegistry(zone)
	if err != nil {
		return nil, fmt.Errorf("indexing castle: %w", err)
	}
	if err := reg.ValidateExits(); err != nil {
		return nil, fmt.Errorf("checking castle exits: %w", err)
	}
	return reg, nil
}

// convertYAMLZone converts the parsed YAML structures into domain types.
// Duplicate room IDs and duplicate exit directions are rejected here because
// the map-based domain types cannot represent them.
func convertYAMLZone(yz yamlZone) (*Zone, error) {
	zone := &Zone{
		ID:           yz.ID,
		Name:         yz.Name,
		Description:  strings.TrimSpace(yz.Description),
		StartRoom:    yz.StartRoom,
		TreasureRoom: yz.TreasureRoom,
		Rooms:        make(map[string]*Room, len(yz.Rooms)),
	}

	for _, yr := range yz.Rooms {
		if _, exists := zone.Rooms[yr.ID]; exists {
			return nil, fmt.Errorf("zone %q: duplicate room ID %q", yz.ID, yr.ID)
		}
		room := &Room{
			ID:          yr.ID,
			Title:       yr.Title,
			Description: strings.TrimSpace(yr.Description),
			Art:         strings.TrimRight(yr.Art, "\n"),
			Exits:       make(map[Direction]string, len(yr.Exits)),
		}
		for _, ye := range yr.Exits {
			dir := Direction(strings.ToLower(ye.Direction))
			if _, exists := room.Exits[dir]; exists {
				return nil, fmt.Errorf("zone %q: room %q: duplicate exit %q", yz.ID, yr.ID, dir)
			}
			room.Exits[dir] = ye.Target
		}
		zone.Rooms[room.ID] = room
	}

	return zone, nil
}
