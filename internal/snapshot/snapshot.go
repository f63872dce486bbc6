// Package snapshot loads host state snapshots from disk.
//
// Two layouts are accepted in both JSON and MessagePack: the list returned
// by the host's states endpoint ([{"entity_id": ..., "state": ..., "attributes": {...}}])
// and a map keyed by entity id ({"sensor.x": {"state": ..., "attributes": {...}}}).
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/prism-dashboard/cards/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// Encoding of a snapshot file.
type Encoding string

const (
	EncodingJSON    Encoding = "json"
	EncodingMsgpack Encoding = "msgpack"
)

// EncodingFor picks the encoding from a file extension.
func EncodingFor(filePath string) Encoding {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".msgpack", ".mpk", ".mp":
		return EncodingMsgpack
	default:
		return EncodingJSON
	}
}

// Load reads a snapshot file.
func Load(filePath string) (models.Snapshot, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer file.Close()

	return Read(file, EncodingFor(filePath))
}

// Read decodes a snapshot from r.
func Read(r io.Reader, enc Encoding) (models.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	switch enc {
	case EncodingMsgpack:
		return decodeMsgpack(data)
	case EncodingJSON:
		return decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported snapshot encoding %q", enc)
	}
}

func decodeJSON(data []byte) (models.Snapshot, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return models.Snapshot{}, nil
	}

	if trimmed[0] == '[' {
		var list []models.EntityState
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decoding snapshot list: %w", err)
		}
		return FromList(list), nil
	}

	var keyed map[string]models.EntityState
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, fmt.Errorf("decoding snapshot map: %w", err)
	}
	return FromMap(keyed), nil
}

func decodeMsgpack(data []byte) (models.Snapshot, error) {
	if len(data) == 0 {
		return models.Snapshot{}, nil
	}

	var list []models.EntityState
	if err := msgpack.Unmarshal(data, &list); err == nil {
		return FromList(list), nil
	}

	var keyed map[string]models.EntityState
	if err := msgpack.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("decoding msgpack snapshot: %w", err)
	}
	return FromMap(keyed), nil
}

// FromList indexes a state list by entity id. Entries without an id are
// dropped; on duplicates the last one wins.
func FromList(list []models.EntityState) models.Snapshot {
	snap := make(models.Snapshot, len(list))
	for _, st := range list {
		if st.EntityID == "" {
			continue
		}
		snap[st.EntityID] = st
	}
	return snap
}

// FromMap fills in EntityID from the map keys.
func FromMap(keyed map[string]models.EntityState) models.Snapshot {
	snap := make(models.Snapshot, len(keyed))
	for id, st := range keyed {
		st.EntityID = id
		snap[id] = st
	}
	return snap
}

// Write encodes a snapshot as a state list. Used to produce fixture files.
func Write(w io.Writer, snap models.Snapshot, enc Encoding) error {
	list := make([]models.EntityState, 0, len(snap))
	for _, st := range snap {
		list = append(list, st)
	}

	switch enc {
	case EncodingMsgpack:
		return msgpack.NewEncoder(w).Encode(list)
	case EncodingJSON:
		return json.NewEncoder(w).Encode(list)
	default:
		return fmt.Errorf("unsupported snapshot encoding %q", enc)
	}
}
