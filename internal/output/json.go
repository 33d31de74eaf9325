// Package output formats replay results for machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chesslab-go/internal/worker"
)

// JSONReplay represents one replayed script in JSON format.
type JSONReplay struct {
	Name      string `json:"name"`
	Applied   int    `json:"applied"`
	Rejected  []int  `json:"rejected,omitempty"` // Script lines
	Checks    int    `json:"checks,omitempty"`
	Turn      int    `json:"turn"`
	Position  string `json:"position"` // Zobrist key, hex
	Duplicate string `json:"duplicateOf,omitempty"`
	Error     string `json:"error,omitempty"`
}

// JSONOutput holds every replay for array output.
type JSONOutput struct {
	Replays []*JSONReplay `json:"replays"`
	Failed  int           `json:"failed"`
}

// ReplayToJSON converts a replay result to JSON format.
func ReplayToJSON(r worker.ProcessResult) *JSONReplay {
	jr := &JSONReplay{
		Name:      r.Result.Name,
		Applied:   r.Result.Applied,
		Rejected:  r.Result.Rejected,
		Checks:    r.Result.Checks,
		Turn:      r.Result.Turn,
		Position:  fmt.Sprintf("%016x", r.Result.Hash),
		Duplicate: r.Duplicate,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	return jr
}

// WriteReplaysJSON writes the results as one indented JSON document.
func WriteReplaysJSON(w io.Writer, results []worker.ProcessResult) error {
	doc := &JSONOutput{Replays: make([]*JSONReplay, len(results))}
	for i, r := range results {
		doc.Replays[i] = ReplayToJSON(r)
		if r.Err != nil {
			doc.Failed++
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
