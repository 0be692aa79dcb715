package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DocumentKind - вид prose-документа
type DocumentKind string

const (
	DocumentPDF  DocumentKind = "pdf"
	DocumentDOCX DocumentKind = "docx"
)

// DocumentExtractor извлекает плоский текст из prose-документов (PDF, DOCX).
// Алгоритм превращения этого текста в кандидатов не определен, поэтому поток
// всегда пуст и вызов завершается отказом "no valid questions" на стороне
// персистера. Это сознательно сохраненный no-op, а не недоделка: разбор
// прозы в вопросы ждет продуктового решения (см. DESIGN.md).
type DocumentExtractor struct {
	kind    DocumentKind
	content []byte
}

// NewDocumentExtractor создает экстрактор для prose-документа
func NewDocumentExtractor(kind DocumentKind, content []byte) *DocumentExtractor {
	return &DocumentExtractor{kind: kind, content: content}
}

// Records разбирает документ (ошибки разбора всплывают), но кандидатов
// не порождает
func (e *DocumentExtractor) Records() iter.Seq2[QuestionRecord, error] {
	return func(yield func(QuestionRecord, error) bool) {
		if _, err := e.PlainText(); err != nil {
			yield(QuestionRecord{}, fmt.Errorf("extract %s text: %w", e.kind, err))
		}
	}
}

// PlainText возвращает текстовое содержимое документа
func (e *DocumentExtractor) PlainText() (string, error) {
	switch e.kind {
	case DocumentPDF:
		return pdfPlainText(e.content)
	case DocumentDOCX:
		return docxPlainText(e.content)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, e.kind)
	}
}

// pdfPlainText извлекает текст всех страниц PDF
func pdfPlainText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, textReader); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// docxPlainText извлекает текст из word/document.xml внутри docx-архива.
// Собираются все текстовые прогоны (элементы w:t), абзацы разделяются
// переводом строки.
func docxPlainText(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var document *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", errors.New("docx: word/document.xml not found")
	}

	rc, err := document.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
