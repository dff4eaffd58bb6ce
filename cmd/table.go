package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	score "github.com/score-adapter/score-adapter/score"
)

// rowRecord converts one CSV row into a raw record using the deployment's
// feature schema. Empty cells are missing values; cells in numeric columns
// that fail to parse stay as text, so the normalizer's type-mismatch path
// imputes them instead of the run erroring out.
func rowRecord(header []string, row []string, table *score.ImputationTable) *score.Record {
	rec := score.NewRecord()
	for i, name := range header {
		if i >= len(row) {
			break
		}
		cell := row[i]
		if cell == "" {
			rec.Set(name, score.Missing())
			continue
		}
		if entry, ok := table.Lookup(name); ok && entry.Kind == score.KindNumeric {
			if f, err := strconv.ParseFloat(cell, 64); err == nil {
				rec.Set(name, score.Number(f))
				continue
			}
		}
		rec.Set(name, score.Text(cell))
	}
	return rec
}

// scoreTable scores every row of the input CSV and writes one output row per
// input row, preserving order. Rows are scored concurrently up to the worker
// limit; the scorer serializes what the embedded runtime requires.
func scoreTable(scorer *score.Scorer, table *score.ImputationTable, inPath, outPath string, workers int) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	reader := csv.NewReader(in)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read csv row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}

	results := make([]score.Result, len(rows))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			results[i] = scorer.Score(rowRecord(header, row, table))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)

	if err := writer.Write([]string{score.OutputClassification, score.OutputEventProbability, "STATUS"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, res := range results {
		outRow := []string{"", "", strconv.Itoa(res.Status)}
		if res.Status == score.StatusOK {
			outRow[0] = res.Classification
			outRow[1] = strconv.FormatFloat(res.EventProbability, 'f', -1, 64)
		}
		if err := writer.Write(outRow); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
