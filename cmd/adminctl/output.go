package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/category"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/sector"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/subcategory"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// table é a visão tabular de um resultado; json e yaml usam o valor original.
type table struct {
	header []string
	rows   [][]string
}

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) print(value interface{}, t table) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatYAML:
		return p.yaml(value)
	default:
		return p.table(t)
	}
}

// yaml passa pelo JSON antes para manter os mesmos nomes de campo da API.
func (p *printer) yaml(value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func (p *printer) table(t table) error {
	if len(t.rows) == 0 {
		_, err := fmt.Fprintln(p.w, styleDim.Render("Nenhum registro encontrado."))
		return err
	}
	_, err := io.WriteString(p.w, renderTable(t.header, t.rows))
	return err
}

func active(v bool) string {
	if v {
		return styleActive.Render("sim")
	}
	return styleInactive.Render("não")
}

func sectorTable(sectors []*sector.Sector) table {
	t := table{header: []string{"#", "ORDER", "ID", "NAME", "SLUG", "ACTIVE"}}
	for i, s := range sectors {
		t.rows = append(t.rows, []string{
			strconv.Itoa(i), strconv.Itoa(s.SortOrder), s.Id.String(), s.Name, s.Slug, active(s.IsActive),
		})
	}
	return t
}

func categoryTable(categories []*category.ServiceCategory) table {
	t := table{header: []string{"#", "ORDER", "ID", "NAME", "DEPTH", "MAPPING", "ACTIVE"}}
	for i, c := range categories {
		levels := make([]string, 0, len(c.LevelMapping))
		for _, e := range c.LevelMapping.Sorted() {
			levels = append(levels, fmt.Sprintf("%d:%s", e.Level, e.AttributeType))
		}
		t.rows = append(t.rows, []string{
			strconv.Itoa(i), strconv.Itoa(c.SortOrder), c.Id.String(), c.Name,
			strconv.Itoa(c.Level), strings.Join(levels, ","), active(c.IsActive),
		})
	}
	return t
}

func subCategoryTable(subs []*subcategory.SubCategory) table {
	t := table{header: []string{"#", "ORDER", "ID", "NAME", "LEVEL", "ATTRIBUTE", "ACTIVE"}}
	for i, s := range subs {
		attr := "-"
		if s.AttributeType != nil {
			attr = string(*s.AttributeType)
		}
		t.rows = append(t.rows, []string{
			strconv.Itoa(i), strconv.Itoa(s.SortOrder), s.Id.String(), s.Name,
			strconv.Itoa(s.Level), attr, active(s.IsActive),
		})
	}
	return t
}
