package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FileKind represents what a record is: a folder, a plain file or an image
type FileKind string

const (
	FileKindFolder FileKind = "folder"
	FileKindFile   FileKind = "file"
	FileKindImage  FileKind = "image"
)

// ParseFileKind maps a wire-level type string onto a FileKind
func ParseFileKind(s string) (FileKind, bool) {
	switch FileKind(s) {
	case FileKindFolder, FileKindFile, FileKindImage:
		return FileKind(s), true
	}
	return "", false
}

// RootFolderID is the parent sentinel meaning "no parent folder". uuid.New
// never produces the nil uuid, so it cannot collide with a real record id.
var RootFolderID = uuid.Nil

// ThumbnailWidths are the fixed target widths generated for every image upload
var ThumbnailWidths = []int{500, 250, 100}

// ListPageSize is the fixed page size for file listings
const ListPageSize = 20

// FileRecord is a node in a user's file tree. BlobKey is set exactly once at
// creation for non-folder records and never changes; IsPublic is the only
// field mutated afterwards.
type FileRecord struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Kind      FileKind
	ParentID  uuid.UUID
	IsPublic  bool
	BlobKey   string
	CreatedAt time.Time
}

// VisibleTo reports whether the record may be returned to the given requester.
// A private record is indistinguishable from an absent one for everyone else.
func (f FileRecord) VisibleTo(userID uuid.UUID) bool {
	return f.IsPublic || f.OwnerID == userID
}

// VariantKey returns the blob key of the resized variant at the given width
func (f FileRecord) VariantKey(width int) string {
	return VariantKey(f.BlobKey, width)
}

// VariantKey suffixes a blob key with a thumbnail width
func VariantKey(blobKey string, width int) string {
	return fmt.Sprintf("%s_%d", blobKey, width)
}
