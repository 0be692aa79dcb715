package ingest

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StagedUpload - загруженный blob, временно сохраненный на диск на время
// обработки запроса. На диске файл лежит под случайным именем; оригинальное
// имя сохраняется отдельно, т.к. по его расширению выбирается экстрактор.
type StagedUpload struct {
	OriginalName string
	Path         string
}

// StageUpload сохраняет содержимое multipart-файла в dir под uuid-именем
func StageUpload(dir string, fh *multipart.FileHeader) (*StagedUpload, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("stage upload: %w", err)
	}

	return &StagedUpload{OriginalName: fh.Filename, Path: path}, nil
}

// Read возвращает содержимое staged-файла
func (s *StagedUpload) Read() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Remove удаляет staged-файл. Blob потребляется один раз за запрос,
// контракта долговременного хранения у этого слоя нет.
func (s *StagedUpload) Remove() {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("[Ingest] Не удалось удалить staged-файл %s: %v", s.Path, err)
	}
}
