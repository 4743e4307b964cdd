package drive

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/driveassist/backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockFile is one entry of the in-memory drive used in tests and mock mode.
type MockFile struct {
	Record  entity.FileRecord
	Content []byte
	// Export holds the text/plain export of provider-native documents.
	Export []byte
}

// MockClient is an in-memory stand-in for the Drive API. It evaluates the
// same query expression the real provider receives: `name contains` terms
// (OR-ed), mimeType filters (OR-ed) and the trashed flag are honored.
type MockClient struct {
	files  []MockFile
	logger *zap.Logger
}

func NewMockClient(logger *zap.Logger, files ...MockFile) *MockClient {
	return &MockClient{files: files, logger: logger}
}

var (
	nameTermRe = regexp.MustCompile(`name contains '([^']*)'`)
	mimeTypeRe = regexp.MustCompile(`mimeType='([^']*)'`)
)

func (m *MockClient) ListFiles(ctx context.Context, query string, pageSize int64, orderBy string) ([]entity.FileRecord, error) {
	ctxzap.Debug(ctx, "[MOCK] listing files", zap.String("query", query))

	var nameTerms []string
	for _, match := range nameTermRe.FindAllStringSubmatch(query, -1) {
		nameTerms = append(nameTerms, strings.ToLower(match[1]))
	}
	mimeTypes := make(map[string]bool)
	for _, match := range mimeTypeRe.FindAllStringSubmatch(query, -1) {
		mimeTypes[match[1]] = true
	}

	var records []entity.FileRecord
	for _, f := range m.files {
		if len(mimeTypes) > 0 && !mimeTypes[string(f.Record.Format)] {
			continue
		}
		if len(nameTerms) > 0 && !matchesAnyTerm(f.Record.Name, nameTerms) {
			continue
		}
		records = append(records, f.Record)
	}

	sortRecords(records, orderBy)

	if pageSize > 0 && int64(len(records)) > pageSize {
		records = records[:pageSize]
	}
	return records, nil
}

func matchesAnyTerm(name string, terms []string) bool {
	lower := strings.ToLower(name)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func sortRecords(records []entity.FileRecord, orderBy string) {
	switch orderBy {
	case "name":
		sort.SliceStable(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	case "name desc":
		sort.SliceStable(records, func(i, j int) bool { return records[i].Name > records[j].Name })
	case "modifiedTime":
		sort.SliceStable(records, func(i, j int) bool { return records[i].ModifiedTime < records[j].ModifiedTime })
	case "modifiedTime desc":
		sort.SliceStable(records, func(i, j int) bool { return records[i].ModifiedTime > records[j].ModifiedTime })
	}
}

func (m *MockClient) DownloadMedia(ctx context.Context, fileID string) ([]byte, error) {
	for _, f := range m.files {
		if f.Record.ID == fileID {
			return f.Content, nil
		}
	}
	return nil, errors.New("mock drive: file not found: " + fileID)
}

func (m *MockClient) ExportMedia(ctx context.Context, fileID, targetMIME string) ([]byte, error) {
	for _, f := range m.files {
		if f.Record.ID != fileID {
			continue
		}
		if f.Export != nil {
			return f.Export, nil
		}
		return f.Content, nil
	}
	return nil, errors.New("mock drive: file not found: " + fileID)
}
