package report

import (
	"encoding/json"
	"io"

	"github.com/sartorproj/goallan/adev"
)

// jsonRow is the exported form of a row.
type jsonRow struct {
	Tau       float64 `json:"tau"`
	M         int     `json:"m"`
	Deviation float64 `json:"deviation"`
	Error     float64 `json:"error"`
	N         int     `json:"n"`
}

type jsonReport struct {
	Header
	Rows []jsonRow `json:"rows"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep *Report) error {
	out := jsonReport{
		Header: rep.Header,
		Rows:   make([]jsonRow, len(rep.Rows)),
	}
	for i, r := range rep.Rows {
		out.Rows[i] = jsonRow{Tau: r.Tau, M: r.M, Deviation: r.Deviation, Error: r.Error, N: r.N}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ReadJSON reads a report written by WriteJSON.
func ReadJSON(r io.Reader) (*Report, error) {
	var in jsonReport
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}

	rep := &Report{Header: in.Header, Rows: make([]adev.Row, len(in.Rows))}
	for i, r := range in.Rows {
		rep.Rows[i] = adev.Row{Tau: r.Tau, M: r.M, Deviation: r.Deviation, Error: r.Error, N: r.N}
	}
	return rep, nil
}
