package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

type unit struct {
	Const    string
	Symbol   string
	Name     string
	Base     string
	Factor   string
	Offset   string
	Constant string
	Aliases  []string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "unit", "unit_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of unit objects
	units, err := convertDataToUnits(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the unit objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "unit", "unit_data.tmpl"), units)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("unit_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// convertDataToUnits keeps the order of the CSV records, since the index
// of a unit is its value.
// The first record must be the dimensionless unit.
func convertDataToUnits(data [][]string) ([]unit, error) {
	units := []unit{}
	consts := map[string]bool{}
	for i, rec := range data {
		u := unit{
			Const:    rec[0],
			Symbol:   rec[1],
			Name:     rec[2],
			Base:     rec[3],
			Factor:   rec[4],
			Offset:   rec[5],
			Constant: rec[6],
		}
		if rec[7] != "" {
			u.Aliases = strings.Split(rec[7], ";")
		}
		if i == 0 && u.Const != "One" {
			return nil, fmt.Errorf("first unit is %v, want One", u.Const)
		}
		consts[u.Const] = true
		units = append(units, u)
	}
	for _, u := range units {
		if !consts[u.Base] {
			return nil, fmt.Errorf("unit %v: unknown base unit %v", u.Const, u.Base)
		}
	}
	if len(units) > 256 {
		return nil, fmt.Errorf("too many units: %v", len(units))
	}
	return units, nil
}

func generateGoCode(filename string, units []unit) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, units)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
