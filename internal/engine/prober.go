package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

const (
	protocolICMP     = 1
	protocolIPv6ICMP = 58

	// DefaultProbeTimeout bounds a probe whose context carries no deadline.
	DefaultProbeTimeout = 2 * time.Second
)

// Prober performs one timed reachability check against a resolved endpoint.
type Prober interface {
	Probe(ctx context.Context, ip net.IP) (time.Duration, error)
}

// ICMPProber sends a single ICMP echo request per probe and times the
// matching reply. Unprivileged mode uses datagram ICMP sockets, which Linux
// allows for groups listed in net.ipv4.ping_group_range; privileged mode
// needs a raw socket.
type ICMPProber struct {
	Timeout    time.Duration
	Privileged bool

	id  int
	seq atomic.Uint32
}

// NewICMPProber creates an ICMPProber with the default timeout.
func NewICMPProber(privileged bool) *ICMPProber {
	return &ICMPProber{
		Timeout:    DefaultProbeTimeout,
		Privileged: privileged,
		id:         rand.Intn(0xffff),
	}
}

// Probe sends one echo request to ip and waits for the reply. The elapsed
// time covers only the send and the wait for the matching reply.
func (p *ICMPProber) Probe(ctx context.Context, ip net.IP) (time.Duration, error) {
	if ip == nil {
		return 0, errors.New("no address to probe")
	}
	v6 := ip.To4() == nil

	conn, err := icmp.ListenPacket(p.network(v6), "")
	if err != nil {
		return 0, fmt.Errorf("opening icmp socket: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(p.deadline(ctx, time.Now())); err != nil {
		return 0, err
	}
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Now())
	})
	defer stop()

	seq := int(p.seq.Add(1) & 0xffff)
	token := uuid.New()
	msg, err := echoRequest(v6, p.id, seq, token)
	if err != nil {
		return 0, err
	}

	var dst net.Addr = &net.IPAddr{IP: ip}
	if !p.Privileged {
		dst = &net.UDPAddr{IP: ip}
	}

	proto := protocolICMP
	if v6 {
		proto = protocolIPv6ICMP
	}

	start := time.Now()
	if _, err := conn.WriteTo(msg, dst); err != nil {
		return 0, fmt.Errorf("sending echo request: %w", err)
	}

	buf := make([]byte, 1500)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			return 0, readError(ctx, err)
		}
		matched, err := matchReply(proto, buf[:n], seq, token)
		if err != nil {
			return 0, err
		}
		if matched {
			return time.Since(start), nil
		}
	}
}

func (p *ICMPProber) network(v6 bool) string {
	switch {
	case v6 && p.Privileged:
		return "ip6:ipv6-icmp"
	case v6:
		return "udp6"
	case p.Privileged:
		return "ip4:icmp"
	default:
		return "udp4"
	}
}

// deadline is the context deadline when there is one, otherwise now plus
// the prober's own timeout.
func (p *ICMPProber) deadline(ctx context.Context, now time.Time) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return now.Add(p.timeout())
}

// readError maps a failed read to ErrProbeTimeout when either deadline ran
// out, so both paths report the same message.
func readError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return ErrProbeTimeout
		}
		return ctxErr
	}
	var neterr net.Error
	if errors.As(err, &neterr) && neterr.Timeout() {
		return ErrProbeTimeout
	}
	return fmt.Errorf("reading echo reply: %w", err)
}

func (p *ICMPProber) timeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultProbeTimeout
	}
	return p.Timeout
}

// echoRequest marshals an echo request carrying token as its payload.
func echoRequest(v6 bool, id, seq int, token uuid.UUID) ([]byte, error) {
	data, err := token.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("unable to marshal tracker: %w", err)
	}
	var typ icmp.Type = ipv4.ICMPTypeEcho
	if v6 {
		typ = ipv6.ICMPTypeEchoRequest
	}
	msg := &icmp.Message{
		Type: typ,
		Code: 0,
		Body: &icmp.Echo{ID: id, Seq: seq, Data: data},
	}
	return msg.Marshal(nil)
}

// matchReply reports whether b is the echo reply for seq/token. A
// destination-unreachable message quoting our request yields ErrUnreachable.
// The echo ID is not compared because datagram sockets rewrite it.
func matchReply(proto int, b []byte, seq int, token uuid.UUID) (bool, error) {
	m, err := icmp.ParseMessage(proto, b)
	if err != nil {
		// Not ours or truncated; keep waiting.
		return false, nil
	}

	switch m.Type {
	case ipv4.ICMPTypeEchoReply, ipv6.ICMPTypeEchoReply:
		echo, ok := m.Body.(*icmp.Echo)
		if !ok || echo.Seq != seq {
			return false, nil
		}
		want, _ := token.MarshalBinary()
		return bytes.HasPrefix(echo.Data, want), nil

	case ipv4.ICMPTypeDestinationUnreachable, ipv6.ICMPTypeDestinationUnreachable:
		du, ok := m.Body.(*icmp.DstUnreach)
		if !ok {
			return false, nil
		}
		if quotedSeq(proto, du.Data) == seq {
			return false, fmt.Errorf("%w (code %d)", ErrUnreachable, m.Code)
		}
	}
	return false, nil
}

// quotedSeq extracts the echo sequence number from the original datagram
// quoted in an ICMP error, or -1 if it cannot be found.
func quotedSeq(proto int, data []byte) int {
	hdr := 40
	if proto == protocolICMP {
		if len(data) < 1 {
			return -1
		}
		hdr = int(data[0]&0x0f) * 4
	}
	if len(data) < hdr+8 {
		return -1
	}
	return int(data[hdr+6])<<8 | int(data[hdr+7])
}
