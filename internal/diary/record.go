package diary

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/webdiary/internal/common"
)

// KeyPrefix starts every diary key.
const KeyPrefix = "diary_"

var keyPattern = regexp.MustCompile(`^diary_\d+$`)

// Record is the persisted form of an entry.
type Record struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// IsKey reports whether s is a diary key.
func IsKey(s string) bool {
	return keyPattern.MatchString(s)
}

// NewKey mints the key for an entry created at t.
func NewKey(t time.Time) string {
	return KeyPrefix + strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseKey returns the creation time encoded in key.
func ParseKey(key string) (time.Time, error) {
	if !IsKey(key) {
		return time.Time{}, fmt.Errorf("%w: %q", common.ErrorInvalidKey, key)
	}
	ms, err := strconv.ParseInt(strings.TrimPrefix(key, KeyPrefix), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", common.ErrorInvalidKey, key, err)
	}
	return time.UnixMilli(ms), nil
}

// DecodeRecord parses a stored value. A nil value is ErrorNotFound; anything
// that is not a JSON object is ErrorCorruptRecord.
func DecodeRecord(data []byte) (*Record, error) {
	if data == nil {
		return nil, common.ErrorNotFound
	}
	var r *Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorCorruptRecord, err)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: null record", common.ErrorCorruptRecord)
	}
	return r, nil
}

// Encode returns the JSON stored for r.
func (r *Record) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return data, nil
}

// WriteDate is the line shown under the editor.
func (r *Record) WriteDate() string {
	if r.UpdatedAt == r.CreatedAt {
		return "Created on " + r.CreatedAt
	}
	return "Created on " + r.CreatedAt + ", Updated on " + r.UpdatedAt
}

// DocumentTitle is the window title while r is loaded.
func (r *Record) DocumentTitle() string {
	return displayTitle(r.Title) + " | Web Diary"
}

func displayTitle(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}
