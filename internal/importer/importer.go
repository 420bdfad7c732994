package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Soilworks/internal/model"
)

// Options control how an uploaded borehole log is turned into an SPT
// campaign. Zero correction factors fall back to the common defaults.
type Options struct {
	EnergyCorrectionFactor   float64 `json:"energy_correction_factor"`
	DiameterCorrectionFactor float64 `json:"diameter_correction_factor"`
	SamplerCorrectionFactor  float64 `json:"sampler_correction_factor"`

	IdealizationMethod model.SelectionMethod `json:"idealization_method"`
}

// Result is the parsed campaign plus per-borehole row counts and the rows
// that could not be read.
type Result struct {
	SPT         *model.SPT     `json:"spt"`
	Boreholes   map[string]int `json:"boreholes"`
	SkippedRows []int          `json:"skipped_rows,omitempty"`
}

// ReadXLSX parses a borehole log workbook into an SPT campaign. The first
// sheet is read with one blow per row: borehole name, depth [m], blow count.
// A header row is skipped, refusals may be written as "R".
func ReadXLSX(r io.Reader, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, model.Missingf("sheet %q has no data rows", sheet)
	}

	if opts.EnergyCorrectionFactor == 0 {
		opts.EnergyCorrectionFactor = 1.0
	}
	if opts.DiameterCorrectionFactor == 0 {
		opts.DiameterCorrectionFactor = 1.0
	}
	if opts.SamplerCorrectionFactor == 0 {
		opts.SamplerCorrectionFactor = 1.0
	}
	if opts.IdealizationMethod == "" {
		opts.IdealizationMethod = model.SelectionAvg
	}

	spt := model.NewSPT(
		opts.EnergyCorrectionFactor,
		opts.DiameterCorrectionFactor,
		opts.SamplerCorrectionFactor,
		opts.IdealizationMethod,
	)

	exps := make(map[string]*model.SPTExp)
	var order []string
	var skipped []int

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			skipped = append(skipped, i+1)
			continue
		}
		name := strings.TrimSpace(row[0])
		depth, depthErr := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		n, nErr := parseBlowCount(row[2])
		if name == "" || depthErr != nil || nErr != nil {
			skipped = append(skipped, i+1)
			continue
		}

		exp, ok := exps[name]
		if !ok {
			created, err := model.NewSPTExp(name, nil)
			if err != nil {
				return nil, err
			}
			exps[name] = created
			exp = created
			order = append(order, name)
		}
		if err := exp.AddBlow(depth, n); err != nil {
			return nil, fmt.Errorf("borehole %s row %d: %w", name, i+1, err)
		}
	}

	if len(order) == 0 {
		return nil, model.Missingf("sheet %q contains no readable blows", sheet)
	}

	counts := make(map[string]int, len(order))
	for _, name := range order {
		spt.AddExp(*exps[name])
		counts[name] = len(exps[name].Blows)
	}

	return &Result{SPT: spt, Boreholes: counts, SkippedRows: skipped}, nil
}

func parseBlowCount(s string) (model.NValue, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "R") {
		return model.Refusal(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return model.NValue{}, err
	}
	return model.NewNValue(n)
}
