// Package output encodes resolved views for the renderer.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/prism-dashboard/cards/internal/actions"
	"github.com/prism-dashboard/cards/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// Card is one resolved card as handed to the renderer.
type Card struct {
	Index int             `json:"index" msgpack:"index"`
	Type  models.CardType `json:"type" msgpack:"type"`
	View  any             `json:"view" msgpack:"view"`

	Actions map[actions.Gesture]models.Action `json:"actions,omitempty" msgpack:"actions,omitempty"`
}

// Document is the full output of one run.
type Document struct {
	RunID string `json:"runId" msgpack:"runId"`
	Title string `json:"title,omitempty" msgpack:"title,omitempty"`
	Cards []Card `json:"cards" msgpack:"cards"`
}

// Encoder writes documents in one format.
type Encoder interface {
	Encode(w io.Writer, doc *Document) error
}

type jsonEncoder struct{ pretty bool }

func (e jsonEncoder) Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	if e.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

type msgpackEncoder struct{}

func (msgpackEncoder) Encode(w io.Writer, doc *Document) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding msgpack: %w", err)
	}
	return nil
}

// NewEncoder returns the encoder for a format name ("json" or "msgpack").
func NewEncoder(format string, pretty bool) (Encoder, error) {
	switch format {
	case "json":
		return jsonEncoder{pretty: pretty}, nil
	case "msgpack":
		return msgpackEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
