package core

// StorageDriver is the abstract interface to the non-volatile byte store
// (EEPROM or flash emulation) that holds the calibration image.
type StorageDriver interface {
	// ReadByte reads one byte at the given storage address.
	ReadByte(addr uint16) (byte, error)

	// WriteByte writes one byte at the given storage address.
	WriteByte(addr uint16, value byte) error
}

// Global singleton used by target wiring code.
var storageDriver StorageDriver

// SetStorageDriver is called by target-specific code to register its driver.
func SetStorageDriver(d StorageDriver) {
	storageDriver = d
}

// MustStorage returns the configured driver or panics if missing.
func MustStorage() StorageDriver {
	if storageDriver == nil {
		panic("storage driver not configured")
	}
	return storageDriver
}
