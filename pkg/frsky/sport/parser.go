package sport

// ParseState is the position of a Parser on the bus.
type ParseState int

// Parse states.
const (
	StateWaitStart      ParseState = iota // waiting for a poll
	StateReadPhysicalID                   // poll start seen, waiting for physical id
	StateReadPacket                       // poll read, collecting the answer
)

// ParseResult indicates the result after one parsing step.
//
// Poll is set when a poll has been read, and again together with Packet
// when the answer to that poll is complete.
type ParseResult struct {
	Poll   *Poll
	Packet *Packet
	Err    error
	State  ParseState
}

// Parser follows the traffic of a Smart Port bus, polls and answers. The
// zero value is ready to use. A Parser must not be shared between buses.
type Parser struct {
	state ParseState
	poll  Poll
	buf   [PacketSize]byte
	size  int
}

// State gets the current parse state.
func (p *Parser) State() ParseState {
	return p.state
}

// Reset drops any partially parsed poll or packet.
func (p *Parser) Reset() {
	*p = Parser{}
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	pr.Poll, pr.Packet, pr.Err = p.parseByte(b)
	pr.State = p.state
	return
}

func (p *Parser) parseByte(b byte) (*Poll, *Packet, error) {
	switch p.state {
	case StateWaitStart:
		if b == PollStart {
			p.state = StateReadPhysicalID
		}
	case StateReadPhysicalID:
		if b == PollStart {
			break
		}
		n, ok := ParsePhysicalID(b)
		if !ok {
			p.state = StateWaitStart
			return nil, nil, ErrPhysicalID
		}
		p.poll, p.size, p.state = Poll{PhysicalID: n}, 0, StateReadPacket
		poll := p.poll
		return &poll, nil, nil
	case StateReadPacket:
		// No answer: the receiver is polling the next id. A started
		// answer never sees a start byte here as the type byte can't be
		// 0x7E.
		if p.size == 0 && b == PollStart {
			p.state = StateReadPhysicalID
			break
		}
		p.buf[p.size] = b
		if p.size++; p.size < PacketSize {
			break
		}
		p.state = StateWaitStart
		poll := p.poll
		pkt, err := DecodePacket(p.buf[:])
		if err != nil {
			return &poll, nil, err
		}
		return &poll, &pkt, nil
	}
	return nil, nil, nil
}
