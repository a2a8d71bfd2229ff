// speedo-host is the operator console for the speedometer corrector.
// It forwards calibration commands over the serial link and echoes the
// device's diagnostic output.
//
// Usage:
//
//	speedo-host -device /dev/ttyACM0
//
// Commands (one per line on stdin):
//
//	SAVE                          persist the calibration table
//	<index> <inMilliHz> <outMilliHz>   update calibration point 1..3
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"

	"speedo/host/serial"
)

func main() {
	device := flag.String("device", "/dev/ttyACM0", "serial device of the corrector")
	baud := flag.Int("baud", 115200, "baud rate")
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "speedo-host: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	// Echo everything the device says.
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := port.Read(buf)
			if n > 0 {
				os.Stdout.Write(buf[:n])
			}
			if err != nil {
				continue // read timeout; keep polling
			}
		}
	}()

	fmt.Println("connected to", *device, "- enter commands, Ctrl-D to exit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		tokens, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "speedo-host: %v\n", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		line := strings.Join(tokens, " ") + "\n"
		if _, err := port.Write([]byte(line)); err != nil {
			fmt.Fprintf(os.Stderr, "speedo-host: write failed: %v\n", err)
		}
	}
}
