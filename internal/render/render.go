// Package render turns bucket dumps into the supported response formats:
// JSON stays structured, CSV, XML and Markdown flatten entities into rows of
// the kind's filterable fields.
package render

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"strings"

	"github.com/foodops/stockbook/internal/filter"
	"github.com/foodops/stockbook/pkg"
	cn "github.com/foodops/stockbook/pkg/constant"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// ContentType returns the MIME type for a format tag.
func ContentType(format string) string {
	switch format {
	case mmodel.FormatCSV:
		return "text/csv; charset=utf-8"
	case mmodel.FormatXML:
		return "application/xml; charset=utf-8"
	case mmodel.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// IsSupported reports whether the format tag is one of the supported formats.
func IsSupported(format string) bool {
	return pkg.Contains(mmodel.SupportedFormats, format)
}

// rows flattens entities into string cells along the kind's field list.
func rows(kind string, records []mmodel.Entity) ([]string, [][]string) {
	fields := filter.Fields(kind)

	out := make([][]string, 0, len(records))

	for _, record := range records {
		row := make([]string, 0, len(fields))

		for _, field := range fields {
			value, ok := filter.Resolve(record, field)
			if !ok {
				row = append(row, "")
				continue
			}

			row = append(row, filter.Stringify(value))
		}

		out = append(out, row)
	}

	return fields, out
}

// CSV renders the records as a comma-separated table with a header row.
func CSV(kind string, records []mmodel.Entity) (string, error) {
	fields, data := rows(kind, records)

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(fields); err != nil {
		return "", pkg.ValidateInternalError(err, "Render")
	}

	for _, row := range data {
		if err := w.Write(row); err != nil {
			return "", pkg.ValidateInternalError(err, "Render")
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", pkg.ValidateInternalError(err, "Render")
	}

	return buf.String(), nil
}

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type xmlRecord struct {
	XMLName xml.Name   `xml:"record"`
	Fields  []xmlField `xml:"field"`
}

type xmlDocument struct {
	XMLName xml.Name    `xml:"records"`
	Kind    string      `xml:"kind,attr"`
	Records []xmlRecord `xml:"record"`
}

// XML renders the records as a flat element-per-field document. Field paths use
// "-" instead of "/" to stay valid element names.
func XML(kind string, records []mmodel.Entity) (string, error) {
	fields, data := rows(kind, records)

	doc := xmlDocument{Kind: kind}

	for _, row := range data {
		rec := xmlRecord{}

		for i, field := range fields {
			rec.Fields = append(rec.Fields, xmlField{
				XMLName: xml.Name{Local: strings.ReplaceAll(field, "/", "-")},
				Value:   row[i],
			})
		}

		doc.Records = append(doc.Records, rec)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", pkg.ValidateInternalError(err, "Render")
	}

	return xml.Header + string(out), nil
}

// Markdown renders the records as a pipe table.
func Markdown(kind string, records []mmodel.Entity) (string, error) {
	fields, data := rows(kind, records)

	var b strings.Builder

	b.WriteString("| " + strings.Join(fields, " | ") + " |\n")

	separators := make([]string, len(fields))
	for i := range separators {
		separators[i] = "---"
	}

	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range data {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "|", "\\|")
		}

		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return b.String(), nil
}

// Render produces the dump body for one format tag. JSON callers should encode
// the records themselves; Render rejects the tag to keep the JSON path structured.
func Render(kind, format string, records []mmodel.Entity) (string, error) {
	switch format {
	case mmodel.FormatCSV:
		return CSV(kind, records)
	case mmodel.FormatXML:
		return XML(kind, records)
	case mmodel.FormatMarkdown:
		return Markdown(kind, records)
	default:
		return "", pkg.ValidateBusinessError(cn.ErrUnsupportedFormat, "Render", format)
	}
}
