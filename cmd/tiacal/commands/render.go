package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/arloliu/tiacal/calibration"
	"github.com/arloliu/tiacal/regression"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"

	currentDigits = 3
)

// ErrUnknownFormat is returned for unsupported --format values.
var ErrUnknownFormat = errors.New("unknown output format")

type renderFunc func(w io.Writer, result *calibration.Result) error

func rendererFor(format string) (renderFunc, error) {
	switch format {
	case formatTable:
		return renderTable, nil
	case formatCSV:
		return renderCSV, nil
	case formatJSON:
		return renderJSON, nil
	default:
		return nil, fmt.Errorf("%w: %q (use %s, %s or %s)", ErrUnknownFormat, format, formatTable, formatCSV, formatJSON)
	}
}

func renderTable(w io.Writer, result *calibration.Result) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("%d plateaus, %d samples, alpha=%.6g beta=%.6g",
		len(result.Points), result.Samples, result.Mapping.Alpha, result.Mapping.Beta)

	tbl.AppendHeader(table.Row{"#", "Current", "Voltage [V]", "StdDev [V]"})
	for i, p := range result.Points {
		tbl.AppendRow(table.Row{
			i,
			humanize.SIWithDigits(p.Current, currentDigits, "A"),
			fmt.Sprintf("%.5f", p.Voltage),
			fmt.Sprintf("%.2e", p.StdDev),
		})
	}
	tbl.AppendFooter(table.Row{"", "reference", result.ReferenceFit.Formula, fmt.Sprintf("R²=%.5f", result.ReferenceFit.RSquared)})
	tbl.AppendFooter(table.Row{"", "sweep", result.SweepFit.Formula, fmt.Sprintf("R²=%.5f", result.SweepFit.RSquared)})
	tbl.Render()

	return nil
}

func renderCSV(w io.Writer, result *calibration.Result) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"current", "voltage", "stddev"})
	for _, p := range result.Points {
		tbl.AppendRow(table.Row{
			strconv.FormatFloat(p.Current, 'g', -1, 64),
			strconv.FormatFloat(p.Voltage, 'g', -1, 64),
			strconv.FormatFloat(p.StdDev, 'g', -1, 64),
		})
	}
	tbl.RenderCSV()

	return nil
}

type jsonFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"rSquared"`
	RMSE      float64 `json:"rmse"`
	N         int     `json:"n"`
}

type jsonResult struct {
	Samples      int                 `json:"samples"`
	Digest       string              `json:"digest"`
	Dropped      int                 `json:"dropped"`
	ReferenceFit jsonFit             `json:"referenceFit"`
	SweepFit     jsonFit             `json:"sweepFit"`
	Mapping      calibration.Mapping `json:"mapping"`
	Points       []calibration.Point `json:"points"`
}

func toJSONFit(m regression.Model) jsonFit {
	return jsonFit{Slope: m.Slope, Intercept: m.Intercept, RSquared: m.RSquared, RMSE: m.RMSE, N: m.N}
}

func renderJSON(w io.Writer, result *calibration.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(jsonResult{
		Samples:      result.Samples,
		Digest:       fmt.Sprintf("%016x", result.Digest),
		Dropped:      result.Dropped,
		ReferenceFit: toJSONFit(result.ReferenceFit),
		SweepFit:     toJSONFit(result.SweepFit),
		Mapping:      result.Mapping,
		Points:       result.Points,
	})
}
