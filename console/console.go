// Line-oriented command console over a serial link.
// Assembles raw receive bytes into newline-terminated commands and hands
// each complete line to a handler.
package console

// MaxLineLen bounds one command line; longer lines are rejected whole so
// a truncated command can never be half-applied.
const MaxLineLen = 64

// Handler processes one complete command line and returns the reply to
// send back, or "" for silence.
type Handler func(line string) string

// Console assembles serial bytes into lines and dispatches them.
type Console struct {
	rx      *FifoBuffer
	line    [MaxLineLen]byte
	lineLen int
	overrun bool
	handler Handler
	write   func([]byte)
}

// New creates a console. write sends reply bytes back over the link.
func New(handler Handler, write func([]byte)) *Console {
	return &Console{
		rx:      NewFifoBuffer(256),
		handler: handler,
		write:   write,
	}
}

// Feed queues incoming serial bytes for Poll.
func (c *Console) Feed(data []byte) {
	c.rx.Write(data)
}

// FeedByte queues one incoming serial byte for Poll.
func (c *Console) FeedByte(b byte) {
	c.rx.WriteByte(b)
}

// Poll drains buffered bytes, dispatching every completed line. Call it
// from the main loop, never from interrupt context.
func (c *Console) Poll() {
	for {
		b, ok := c.rx.ReadByte()
		if !ok {
			return
		}
		switch b {
		case '\r':
			// Tolerate CRLF line endings.
		case '\n':
			c.dispatch()
		default:
			if c.lineLen < len(c.line) {
				c.line[c.lineLen] = b
				c.lineLen++
			} else {
				c.overrun = true
			}
		}
	}
}

func (c *Console) dispatch() {
	line := string(c.line[:c.lineLen])
	c.lineLen = 0

	if c.overrun {
		c.overrun = false
		c.reply("error: line too long")
		return
	}

	if reply := c.handler(line); reply != "" {
		c.reply(reply)
	}
}

func (c *Console) reply(s string) {
	if c.write != nil {
		c.write([]byte(s + "\n"))
	}
}
