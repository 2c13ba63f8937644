package preview

import (
	"encoding/json"
	"fmt"

	"github.com/everwildmud/everwild/internal/atlas"
	"github.com/everwildmud/everwild/internal/logger"
	"github.com/everwildmud/everwild/internal/worldgen"
)

// command is one JSON message from the client.
type command struct {
	Cmd string `json:"cmd"`
	X   int    `json:"x"`
	Y   int    `json:"y"`
	Z   int    `json:"z"`
	Dir string `json:"dir"`
}

// response carries the generated room back to the client.
type response struct {
	OK          bool                    `json:"ok"`
	Error       string                  `json:"error,omitempty"`
	Coordinates worldgen.Coordinate     `json:"coordinates"`
	Blueprint   *worldgen.RoomBlueprint `json:"blueprint,omitempty"`
}

// session is one client's walk through the world. It remembers where the
// client stands and what that room looked like, so the next move can hand
// the generator a truthful arrival context.
type session struct {
	store    *atlas.Atlas
	position worldgen.Coordinate
	current  *worldgen.RoomBlueprint
}

func newSession(store *atlas.Atlas) *session {
	return &session{store: store}
}

func (s *session) handle(message []byte) response {
	var cmd command
	if err := json.Unmarshal(message, &cmd); err != nil {
		return response{Error: "malformed command"}
	}

	switch cmd.Cmd {
	case "goto":
		return s.goTo(worldgen.Coordinate{X: cmd.X, Y: cmd.Y, Z: cmd.Z})
	case "move":
		return s.move(cmd.Dir)
	case "look":
		return s.look()
	default:
		return response{Error: fmt.Sprintf("unknown command %q", cmd.Cmd)}
	}
}

// goTo teleports the session to arbitrary coordinates with no arrival
// context, the same cold start a fresh world gets.
func (s *session) goTo(coords worldgen.Coordinate) response {
	bp := worldgen.GenerateRoom(coords, worldgen.GenerationContext{})
	s.remember(coords, bp)
	return response{OK: true, Coordinates: coords, Blueprint: &bp}
}

// move walks one tile from the current position, carrying the room just
// left as generation context.
func (s *session) move(dir string) response {
	if s.current == nil {
		return response{Error: "not in the world yet, send goto first"}
	}

	direction, ok := parseDirection(dir)
	if !ok {
		return response{Error: fmt.Sprintf("unknown direction %q", dir)}
	}
	if _, open := s.current.Exits[direction]; !open {
		return response{Error: fmt.Sprintf("no exit %s from here", direction), Coordinates: s.position}
	}

	cameFrom := s.position
	ctx := worldgen.GenerationContext{
		CameFrom:            &cameFrom,
		CameFromDescription: s.current.Description,
		CameFromBiome:       s.current.Biome,
	}

	dest := s.position.Step(direction)
	bp := worldgen.GenerateRoom(dest, ctx)
	s.remember(dest, bp)
	return response{OK: true, Coordinates: dest, Blueprint: &bp}
}

// look replays the room the session is standing in.
func (s *session) look() response {
	if s.current == nil {
		return response{Error: "not in the world yet, send goto first"}
	}
	return response{OK: true, Coordinates: s.position, Blueprint: s.current}
}

func (s *session) remember(coords worldgen.Coordinate, bp worldgen.RoomBlueprint) {
	s.position = coords
	s.current = &bp

	if s.store != nil {
		if err := s.store.SaveBlueprint(coords, bp); err != nil {
			logger.Error("Failed to persist visited room", "coords", coords, "error", err)
		}
	}
}

func parseDirection(dir string) (worldgen.Direction, bool) {
	candidate := worldgen.Direction(dir)
	for _, d := range worldgen.AllDirections {
		if d == candidate {
			return d, true
		}
	}
	return "", false
}
