package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pawscare/vet-clinic-site/utils"
)

const (
	// MockBucket is the bucket name the mock storage pretends to use
	MockBucket = "test-bucket"
	// MockPrivateDir is the private directory inside MockBucket
	MockPrivateDir = "private"
)

type mockObject struct {
	content     []byte
	contentType string
}

// MockObjectStorage is an in-memory ObjectStorage for testing
type MockObjectStorage struct {
	mu      sync.RWMutex
	private map[string]mockObject
	public  map[string]mockObject
	acl     map[string]bool

	// FailUploads makes NewUploadURL return an error
	FailUploads bool
}

// NewMockObjectStorage creates a new, empty mock storage
func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{
		private: make(map[string]mockObject),
		public:  make(map[string]mockObject),
		acl:     make(map[string]bool),
	}
}

// NewUploadURL returns a fake presigned URL in the shape S3 would produce
func (m *MockObjectStorage) NewUploadURL(context.Context) (string, string, error) {
	if m.FailUploads {
		return "", "", errors.New("mock: presign failed")
	}
	id := uuid.NewString()
	objectPath := utils.ObjectPathPrefix + "uploads/" + id
	uploadURL := "https://" + MockBucket + ".s3.us-east-1.amazonaws.com/" + MockPrivateDir + "/uploads/" + id + "?X-Amz-Signature=mock"
	return uploadURL, objectPath, nil
}

// NormalizeObjectPath behaves like the S3 implementation for MockBucket
func (m *MockObjectStorage) NormalizeObjectPath(raw string) (string, error) {
	return utils.NormalizeObjectURL(raw, MockBucket, MockPrivateDir)
}

// SetPublicACL marks a stored private object as public
func (m *MockObjectStorage) SetPublicACL(_ context.Context, objectPath string) error {
	if _, err := utils.CleanObjectPath(objectPath); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.private[objectPath]; !ok {
		return ErrObjectNotFound
	}
	m.acl[objectPath] = true
	return nil
}

// OpenPrivate returns a stored private object
func (m *MockObjectStorage) OpenPrivate(_ context.Context, objectPath string) (*StoredObject, error) {
	if _, err := utils.CleanObjectPath(objectPath); err != nil {
		return nil, err
	}

	m.mu.RLock()
	object, ok := m.private[objectPath]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrObjectNotFound
	}
	return object.open(), nil
}

// OpenPublic returns a stored public object
func (m *MockObjectStorage) OpenPublic(_ context.Context, filePath string) (*StoredObject, error) {
	key, err := utils.PublicKey("public", filePath)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	object, ok := m.public[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrObjectNotFound
	}
	return object.open(), nil
}

// Put stores content under an "/objects/..." path as if a client had uploaded it
func (m *MockObjectStorage) Put(objectPath string, content []byte, contentType string) {
	m.mu.Lock()
	m.private[objectPath] = mockObject{content: content, contentType: contentType}
	m.mu.Unlock()
}

// PutPublic stores content under the public directory
func (m *MockObjectStorage) PutPublic(filePath string, content []byte, contentType string) {
	m.mu.Lock()
	m.public["public/"+strings.TrimPrefix(filePath, "/")] = mockObject{content: content, contentType: contentType}
	m.mu.Unlock()
}

// IsPublic reports whether SetPublicACL was called for objectPath
func (m *MockObjectStorage) IsPublic(objectPath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.acl[objectPath]
}

func (o mockObject) open() *StoredObject {
	return &StoredObject{
		Body:          io.NopCloser(bytes.NewReader(o.content)),
		ContentType:   o.contentType,
		ContentLength: int64(len(o.content)),
	}
}
