// Package extract converts uploaded resume files (PDF, DOCX, TXT) into plain
// text for the analysis engine. The engine itself never sees file bytes; this
// is its document-to-text collaborator.
package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// ErrUnsupportedType rejects file types the extractor does not handle.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrNoText reports a parseable file that yielded no extractable text.
var ErrNoText = errors.New("could not extract text")

// FromBytes extracts plain text from an in-memory upload. The mime type is
// normalized from the declared content type and the file extension; PDF is
// parsed with github.com/ledongthuc/pdf, DOCX with
// github.com/nguyenthenguyen/docx, and plain text passes through cleaned.
func FromBytes(data []byte, mimeType, fileName string) (string, error) {
	switch normalizeMimeType(mimeType, fileName) {
	case mimePDF:
		return fromPDF(data)
	case mimeDOCX:
		return fromDOCX(data)
	case mimeText:
		return fromText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrNoText, err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrNoText, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrNoText, err)
	}
	return finishText(buf.String())
}

func fromDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrNoText, err)
	}
	defer doc.Close()
	// GetContent returns WordprocessingML, not plain text.
	return finishText(stripDocxXML(doc.Editable().GetContent()))
}

func fromText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid utf-8", ErrNoText)
	}
	return finishText(string(data))
}

// finishText normalizes line endings and trims; an empty result is ErrNoText
// so callers surface one consistent message for blank documents.
func finishText(raw string) (string, error) {
	cleaned := CleanText(raw)
	if cleaned == "" {
		return "", ErrNoText
	}
	return cleaned, nil
}

// CleanText removes null bytes, normalizes line endings, and collapses runs
// of blank lines and intra-line whitespace while preserving line structure,
// which the section detector relies on.
func CleanText(raw string) string {
	s := strings.ReplaceAll(raw, "\x00", "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.Join(strings.Fields(line), " ")
		if trimmed == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String()
}

func normalizeMimeType(mimeType, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF, mimeDOCX:
		return clean
	case "text/plain", "":
		// fall through to extension check for empty types
	case "application/zip", "application/octet-stream", "application/msword":
		// browsers and proxies mislabel docx uploads; trust the extension
	default:
		return clean
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".docx", ".doc":
		return mimeDOCX
	case ".txt", ".text":
		return mimeText
	default:
		if clean == "text/plain" {
			return mimeText
		}
		return clean
	}
}
