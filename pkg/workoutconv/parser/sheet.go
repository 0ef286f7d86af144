package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseSheet decodes worksheet markup into a Grid. Cell text comes from
// inline strings, shared string references or the raw <v> value. Rows
// without a number and cells with a malformed reference are skipped; only a
// broken XML document is an error.
func ParseSheet(name string, markup []byte, shared []string) (*Grid, error) {
	cells := make(map[CellRef]string)
	maxRow := 0
	row := 0

	decoder := xml.NewDecoder(bytes.NewReader(markup))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "row":
			row = 0
			n, err := strconv.Atoi(attrValue(se, "r"))
			if err != nil {
				continue
			}
			row = n
			if n > maxRow {
				maxRow = n
			}
		case "c":
			if row == 0 {
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			text, err := readCell(decoder, attrValue(se, "t"), shared)
			if err != nil {
				return nil, err
			}
			col, _, err := excelize.SplitCellName(attrValue(se, "r"))
			if err != nil || col == "" {
				continue
			}
			if text != "" {
				cells[CellRef{Row: row, Col: col}] = text
			}
		}
	}

	return NewGrid(name, cells, maxRow), nil
}

// readCell consumes a <c> element and resolves its text.
func readCell(decoder *xml.Decoder, cellType string, shared []string) (string, error) {
	var (
		value    string
		inline   strings.Builder
		hasValue bool
		inInline bool
		depth    = 1
	)

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "is":
				inInline = true
			case "rPh":
				// Phonetic hints are not part of the visible text.
				if err := decoder.Skip(); err != nil {
					return "", err
				}
				depth--
			case "t":
				if inInline {
					text, err := readElementText(decoder)
					if err != nil {
						return "", err
					}
					inline.WriteString(text)
					depth--
				}
			case "v":
				text, err := readElementText(decoder)
				if err != nil {
					return "", err
				}
				value, hasValue = text, true
				depth--
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "is" {
				inInline = false
			}
		}
	}

	switch cellType {
	case "inlineStr":
		return inline.String(), nil
	case "s":
		if !hasValue {
			return "", nil
		}
		idx, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || idx < 0 || idx >= len(shared) {
			return "", nil
		}
		return shared[idx], nil
	default:
		return value, nil
	}
}

// ParseSharedStrings decodes xl/sharedStrings.xml. Each <si> becomes one
// entry holding the concatenation of its text runs.
func ParseSharedStrings(data []byte) ([]string, error) {
	var result []string
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "si" {
			continue
		}
		text, err := readStringItem(decoder)
		if err != nil {
			return nil, err
		}
		result = append(result, text)
	}

	return result, nil
}

func readStringItem(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPh":
				if err := decoder.Skip(); err != nil {
					return "", err
				}
			case "t":
				text, err := readElementText(decoder)
				if err != nil {
					return "", err
				}
				sb.WriteString(text)
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// readElementText reads character data up to the end of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
