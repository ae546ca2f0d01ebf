package progress

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyEntry          = errors.New("progress entry has no values")
	ErrWeightOutOfRange    = errors.New("weight must be between 30 and 200 kg")
	ErrHeightOutOfRange    = errors.New("height must be between 100 and 250 cm")
	ErrMeasurementsTooLong = errors.New("measurements must be at most 500 characters")
	ErrNotesTooLong        = errors.New("notes must be at most 1000 characters")
)

const (
	minWeightKg        = 30
	maxWeightKg        = 200
	minHeightCm        = 100
	maxHeightCm        = 250
	maxMeasurementsLen = 500
	maxNotesLen        = 1000
)

// Entry is one self-reported body measurement record.
type Entry struct {
	id           uuid.UUID
	userID       uuid.UUID
	weightKg     *float64
	heightCm     *float64
	measurements string
	notes        string
	recordedAt   time.Time
}

func NewEntry(userID uuid.UUID, weightKg, heightCm *float64, measurements, notes string, now time.Time) (*Entry, error) {
	if weightKg == nil && heightCm == nil && measurements == "" && notes == "" {
		return nil, ErrEmptyEntry
	}
	if weightKg != nil && (*weightKg < minWeightKg || *weightKg > maxWeightKg) {
		return nil, ErrWeightOutOfRange
	}
	if heightCm != nil && (*heightCm < minHeightCm || *heightCm > maxHeightCm) {
		return nil, ErrHeightOutOfRange
	}
	if utf8.RuneCountInString(measurements) > maxMeasurementsLen {
		return nil, ErrMeasurementsTooLong
	}
	if utf8.RuneCountInString(notes) > maxNotesLen {
		return nil, ErrNotesTooLong
	}

	return &Entry{
		id:           uuid.New(),
		userID:       userID,
		weightKg:     weightKg,
		heightCm:     heightCm,
		measurements: measurements,
		notes:        notes,
		recordedAt:   now,
	}, nil
}

func (e *Entry) ID() uuid.UUID         { return e.id }
func (e *Entry) UserID() uuid.UUID     { return e.userID }
func (e *Entry) WeightKg() *float64    { return e.weightKg }
func (e *Entry) HeightCm() *float64    { return e.heightCm }
func (e *Entry) Measurements() string  { return e.measurements }
func (e *Entry) Notes() string         { return e.notes }
func (e *Entry) RecordedAt() time.Time { return e.recordedAt }
