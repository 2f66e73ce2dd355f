package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

type unit struct {
	Ident   string
	Code    string
	Name    string
	Abbr    string
	Aliases []string
}

type alias struct {
	Text  string
	Ident string
}

type tables struct {
	Units   []unit
	Aliases []alias
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "unit", "unit_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to units and their lookup keys
	tabs, err := convertDataToTables(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the tables using a template
	code, err := generateGoCode(filepath.Join("scripts", "unit", "unit_data.tmpl"), tabs)
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
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

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

// convertDataToTables keeps the CSV order of units, since the first unit
// becomes the zero value of the Unit type.
// Lookup keys are the lowercase codes and all aliases, without duplicates.
func convertDataToTables(data [][]string) (tables, error) {
	tabs := tables{}
	owner := map[string]string{}
	for _, rec := range data {
		u := unit{
			Ident:   rec[0],
			Code:    rec[1],
			Name:    rec[2],
			Abbr:    rec[3],
			Aliases: strings.Fields(rec[4]),
		}
		tabs.Units = append(tabs.Units, u)

		keys := append([]string{strings.ToLower(u.Code)}, u.Aliases...)
		for _, k := range keys {
			k = strings.ToLower(k)
			if prev, ok := owner[k]; ok {
				if prev != u.Ident {
					return tables{}, fmt.Errorf("alias %q is claimed by both %v and %v", k, prev, u.Ident)
				}
				continue
			}
			owner[k] = u.Ident
			tabs.Aliases = append(tabs.Aliases, alias{Text: k, Ident: u.Ident})
		}
	}
	sort.Slice(tabs.Aliases, func(i, j int) bool {
		return tabs.Aliases[i].Text < tabs.Aliases[j].Text
	})
	return tabs, nil
}

func generateGoCode(filename string, tabs tables) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, tabs)
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
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
	return writer.Flush()
}
