package hub

// ParseState is the position of a Parser in the frame.
type ParseState int

// Parse states.
const (
	StateWaitStart     ParseState = iota // waiting for a start marker
	StateReadID                          // start marker seen, waiting for id
	StateReadDataLow                     // waiting for the low data byte
	StateReadDataHigh                    // waiting for the high data byte
	StateEscapePending                   // escape seen, waiting for the escaped byte
	StateWaitEnd                         // both data bytes read, waiting for end marker
)

var stateNames = [...]string{
	StateWaitStart:     "wait-start",
	StateReadID:        "read-id",
	StateReadDataLow:   "read-data-low",
	StateReadDataHigh:  "read-data-high",
	StateEscapePending: "escape-pending",
	StateWaitEnd:       "wait-end",
}

// String implements fmt.Stringer.
func (s ParseState) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// ParseResult indicates the result after one parsing step.
// At most one of Frame and Err is set.
type ParseResult struct {
	Frame *Frame
	Err   error
	State ParseState
}

// Parser parses bytes received from one stream. The zero value is ready to
// use. A Parser must not be shared between streams.
type Parser struct {
	state ParseState
	slot  ParseState // data slot being filled while StateEscapePending
	id    byte
	data  [2]byte
}

// State gets the current parse state.
func (p *Parser) State() ParseState {
	return p.state
}

// Reset drops any partially parsed frame.
func (p *Parser) Reset() {
	*p = Parser{}
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	pr.Frame, pr.Err = p.parseByte(b)
	pr.State = p.state
	return
}

func (p *Parser) parseByte(b byte) (*Frame, error) {
	switch p.state {
	case StateWaitStart:
		if b == Marker {
			p.state = StateReadID
		}
	case StateReadID:
		// Consecutive frames may share one marker, or send both.
		if b != Marker {
			p.id, p.state = b, StateReadDataLow
		}
	case StateReadDataLow, StateReadDataHigh:
		switch b {
		case Escape:
			p.slot, p.state = p.state, StateEscapePending
		case Marker:
			p.state = StateReadID
			return nil, &FramingError{Reason: "frame truncated"}
		default:
			p.store(b)
		}
	case StateEscapePending:
		switch b {
		case EscapedMarker:
			p.store(Marker)
		case EscapedEscape:
			p.store(Escape)
		case Marker:
			p.state = StateReadID
			return nil, &FramingError{Reason: "frame truncated after escape"}
		default:
			p.state = StateWaitStart
			return nil, &FramingError{Reason: "invalid escape sequence"}
		}
	case StateWaitEnd:
		if b != Marker {
			p.state = StateWaitStart
			return nil, &FramingError{Reason: "end marker missing"}
		}
		p.state = StateReadID
		return &Frame{ID: p.id, Value: uint16(p.data[0]) | uint16(p.data[1])<<8}, nil
	}
	return nil, nil
}

func (p *Parser) store(b byte) {
	if p.state == StateEscapePending {
		p.state = p.slot
	}
	if p.state == StateReadDataLow {
		p.data[0], p.state = b, StateReadDataHigh
	} else {
		p.data[1], p.state = b, StateWaitEnd
	}
}

// Decode parses a complete buffer with a fresh Parser and returns all frames
// and framing errors found.
func Decode(buf []byte) (frames []Frame, errs []error) {
	var p Parser
	for _, b := range buf {
		pr := p.Parse(b)
		if pr.Frame != nil {
			frames = append(frames, *pr.Frame)
		}
		if pr.Err != nil {
			errs = append(errs, pr.Err)
		}
	}
	return
}
