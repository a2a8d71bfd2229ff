package core

import (
	"errors"
	"math"
)

// Persisted calibration image, starting at StorageBase:
//
//	0..2   magic 'S' 'N' 'X'
//	3      format version
//	4..35  four curve points, In then Out, float32 little-endian
const (
	StorageBase    = 0
	storageVersion = 1
	blobSize       = 4 + 4*8
)

var storageMagic = [3]byte{'S', 'N', 'X'}

var (
	// ErrNoCalibration is returned by LoadTable when storage holds no
	// recognizable calibration image. The in-memory defaults stay in
	// effect.
	ErrNoCalibration = errors.New("no calibration found in storage")

	// ErrBadCalibration is returned for an image written by an
	// incompatible firmware version.
	ErrBadCalibration = errors.New("unsupported calibration format version")
)

// SaveTable serializes the table field by field and writes it to the store
// sequentially at the fixed base address.
func SaveTable(store StorageDriver, t *CorrectionTable) error {
	var buf [blobSize]byte
	copy(buf[:3], storageMagic[:])
	buf[3] = storageVersion

	off := 4
	for i := range t {
		putFloat32(buf[off:], t[i].In)
		putFloat32(buf[off+4:], t[i].Out)
		off += 8
	}

	for i, b := range buf {
		if err := store.WriteByte(StorageBase+uint16(i), b); err != nil {
			return err
		}
	}
	return nil
}

// LoadTable reads the persisted calibration image into t. On a missing or
// foreign image t is left untouched.
func LoadTable(store StorageDriver, t *CorrectionTable) error {
	var buf [blobSize]byte
	for i := range buf {
		b, err := store.ReadByte(StorageBase + uint16(i))
		if err != nil {
			return err
		}
		buf[i] = b
	}

	if buf[0] != storageMagic[0] || buf[1] != storageMagic[1] || buf[2] != storageMagic[2] {
		return ErrNoCalibration
	}
	if buf[3] != storageVersion {
		return ErrBadCalibration
	}

	var loaded CorrectionTable
	off := 4
	for i := range loaded {
		loaded[i].In = getFloat32(buf[off:])
		loaded[i].Out = getFloat32(buf[off+4:])
		off += 8
	}
	*t = loaded
	return nil
}

func putFloat32(b []byte, v float32) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}

func getFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
