//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/at24cx"
)

// EEPROMStorage persists the calibration image in an AT24C32 on I2C0. It
// implements core.StorageDriver's byte-at-address contract directly.
type EEPROMStorage struct {
	dev at24cx.Device
}

func NewEEPROMStorage() (*EEPROMStorage, error) {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400000,
	})
	if err != nil {
		return nil, err
	}

	dev := at24cx.New(i2c)
	dev.Configure(at24cx.Config{})
	return &EEPROMStorage{dev: dev}, nil
}

func (s *EEPROMStorage) ReadByte(addr uint16) (byte, error) {
	return s.dev.ReadByte(addr)
}

func (s *EEPROMStorage) WriteByte(addr uint16, value byte) error {
	return s.dev.WriteByte(addr, value)
}
