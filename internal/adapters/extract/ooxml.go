package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// The OOXML formats are zip containers of XML parts. These readers pull the
// visible text out of the relevant parts without modelling the documents.

func readDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}
	defer archive.Close()

	part, err := openPart(&archive.Reader, "word/document.xml")
	if err != nil {
		return "", err
	}
	defer part.Close()

	paragraphs, err := collectDocxParagraphs(part)
	if err != nil {
		return "", fmt.Errorf("parse docx body: %w", err)
	}

	return strings.TrimSpace(strings.Join(paragraphs, "\n")), nil
}

// collectDocxParagraphs walks the streaming XML, joining w:t runs inside each
// w:p paragraph.
func collectDocxParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

type xlsxWorkbook struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
	} `xml:"sheets>sheet"`
}

type xlsxSharedStrings struct {
	Items []struct {
		Text string   `xml:"t"`
		Runs []string `xml:"r>t"`
	} `xml:"si"`
}

type xlsxSheet struct {
	Rows []struct {
		Cells []xlsxCell `xml:"c"`
	} `xml:"sheetData>row"`
}

type xlsxCell struct {
	Type  string `xml:"t,attr"`
	Value string `xml:"v"`
}

func readXlsx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open xlsx archive: %w", err)
	}
	defer archive.Close()

	var workbook xlsxWorkbook
	if err := decodePart(&archive.Reader, "xl/workbook.xml", &workbook); err != nil {
		return "", err
	}

	shared := xlsxSharedStrings{}
	// Shared strings are optional; numeric-only workbooks omit the part.
	_ = decodePart(&archive.Reader, "xl/sharedStrings.xml", &shared)

	var parts []string
	for i, sheet := range workbook.Sheets {
		var data xlsxSheet
		partName := fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
		if err := decodePart(&archive.Reader, partName, &data); err != nil {
			return "", err
		}

		parts = append(parts, "Sheet: "+sheet.Name)
		for _, row := range data.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				if value := cellText(cell, shared); value != "" {
					cells = append(cells, value)
				}
			}
			if len(cells) > 0 {
				parts = append(parts, strings.Join(cells, " | "))
			}
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

func cellText(cell xlsxCell, shared xlsxSharedStrings) string {
	if cell.Type != "s" {
		return cell.Value
	}

	index, err := strconv.Atoi(cell.Value)
	if err != nil || index < 0 || index >= len(shared.Items) {
		return ""
	}

	item := shared.Items[index]
	if item.Text != "" {
		return item.Text
	}
	return strings.Join(item.Runs, "")
}

func readPptx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open pptx archive: %w", err)
	}
	defer archive.Close()

	slideNames := make([]string, 0, 8)
	for _, file := range archive.File {
		if strings.HasPrefix(file.Name, "ppt/slides/slide") && strings.HasSuffix(file.Name, ".xml") {
			slideNames = append(slideNames, file.Name)
		}
	}
	sort.Slice(slideNames, func(i, j int) bool {
		return slideNumber(slideNames[i]) < slideNumber(slideNames[j])
	})

	var parts []string
	for i, name := range slideNames {
		part, err := openPart(&archive.Reader, name)
		if err != nil {
			return "", err
		}

		texts, err := collectPptxText(part)
		part.Close()
		if err != nil {
			return "", fmt.Errorf("parse slide %s: %w", name, err)
		}

		section := []string{fmt.Sprintf("Slide %d:", i+1)}
		section = append(section, texts...)
		parts = append(parts, strings.Join(section, "\n"))
	}

	return strings.TrimSpace(strings.Join(parts, "\n\n")), nil
}

func slideNumber(name string) int {
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// collectPptxText gathers a:t runs, one string per run.
func collectPptxText(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var texts []string
	inText := false
	var current strings.Builder

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				if s := strings.TrimSpace(current.String()); s != "" {
					texts = append(texts, s)
				}
				current.Reset()
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return texts, nil
}

func openPart(archive *zip.Reader, name string) (io.ReadCloser, error) {
	for _, file := range archive.File {
		if file.Name == name {
			rc, err := file.Open()
			if err != nil {
				return nil, fmt.Errorf("open archive part %s: %w", name, err)
			}
			return rc, nil
		}
	}
	return nil, fmt.Errorf("archive part %s not found", name)
}

func decodePart(archive *zip.Reader, name string, v any) error {
	part, err := openPart(archive, name)
	if err != nil {
		return err
	}
	defer part.Close()

	if err := xml.NewDecoder(part).Decode(v); err != nil {
		return fmt.Errorf("decode archive part %s: %w", name, err)
	}
	return nil
}
