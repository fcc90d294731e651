// Package slp implements just enough of the Server List Ping protocol to
// fetch a server's status response, whose MOTD and player names carry the
// legacy format codes this repository parses.
package slp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultPort = "25565"

	packetHandshake     = 0x00
	packetStatusRequest = 0x00
	packetPing          = 0x01

	stateStatus = 1
)

// Status is the subset of the status response this tool cares about. The
// string fields may contain legacy format codes.
type Status struct {
	// Description is the MOTD, flattened to a single string if the
	// server sent a chat object.
	Description string
	VersionName string
	Protocol    int64

	OnlinePlayers int64
	MaxPlayers    int64
	// Sample holds the advertised player names, format codes included.
	Sample []string

	// Latency of the ping/pong exchange.
	Latency time.Duration

	// RawJSON is the status response as received.
	RawJSON string
}

// Ping fetches the status of the server at addr ("host" or "host:port";
// the port defaults to 25565). The timeout bounds the whole exchange.
func Ping(addr string, timeout time.Duration) (*Status, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		host, port = addr, defaultPort
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", port, err)
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}

	r := bufio.NewReader(conn)

	if err := writeHandshake(conn, host, uint16(portNum)); err != nil {
		return nil, fmt.Errorf("handshake failed: %w", err)
	}
	if err := writePacket(conn, packetStatusRequest, nil); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}

	raw, err := readStatusResponse(r)
	if err != nil {
		return nil, fmt.Errorf("reading status response: %w", err)
	}

	status := parseStatus(raw)

	latency, err := exchangePing(conn, r)
	if err != nil {
		// The status itself arrived fine; some servers just close the
		// connection instead of answering the ping.
		return status, nil
	}
	status.Latency = latency

	return status, nil
}

// writeHandshake sends the handshake that switches the connection into
// status state. Protocol version -1 is the convention for "just pinging".
func writeHandshake(w io.Writer, host string, port uint16) error {
	var data []byte
	data = appendVarInt(data, -1)
	data = appendVarInt(data, int32(len(host)))
	data = append(data, host...)
	data = binary.BigEndian.AppendUint16(data, port)
	data = appendVarInt(data, stateStatus)
	return writePacket(w, packetHandshake, data)
}

// writePacket frames and sends a packet: VarInt total length, VarInt
// packet id, then the payload.
func writePacket(w io.Writer, id int32, data []byte) error {
	body := appendVarInt(nil, id)
	body = append(body, data...)
	packet := appendVarInt(nil, int32(len(body)))
	packet = append(packet, body...)
	_, err := w.Write(packet)
	return err
}

// readStatusResponse reads the status response packet and returns its
// JSON payload.
func readStatusResponse(r *bufio.Reader) (string, error) {
	length, err := readVarInt(r)
	if err != nil {
		return "", err
	}
	if length <= 0 {
		return "", fmt.Errorf("invalid packet length %d", length)
	}

	id, err := readVarInt(r)
	if err != nil {
		return "", err
	}
	if id != 0 {
		return "", fmt.Errorf("unexpected packet id %#x", id)
	}

	strLen, err := readVarInt(r)
	if err != nil {
		return "", err
	}
	if strLen < 0 {
		return "", fmt.Errorf("invalid string length %d", strLen)
	}

	buf := make([]byte, strLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// exchangePing measures round-trip time with a ping/pong pair.
func exchangePing(conn net.Conn, r *bufio.Reader) (time.Duration, error) {
	payload := time.Now().UnixNano()
	data := binary.BigEndian.AppendUint64(nil, uint64(payload))

	start := time.Now()
	if err := writePacket(conn, packetPing, data); err != nil {
		return 0, err
	}

	if _, err := readVarInt(r); err != nil {
		return 0, err
	}
	id, err := readVarInt(r)
	if err != nil {
		return 0, err
	}
	if id != packetPing {
		return 0, fmt.Errorf("unexpected pong packet id %#x", id)
	}
	echo := make([]byte, 8)
	if _, err := io.ReadFull(r, echo); err != nil {
		return 0, err
	}
	if int64(binary.BigEndian.Uint64(echo)) != payload {
		return 0, fmt.Errorf("pong payload mismatch")
	}
	return time.Since(start), nil
}

// parseStatus pulls the interesting fields out of the status JSON. The
// description is either a plain string or a chat object; both occur in
// the wild.
func parseStatus(raw string) *Status {
	status := &Status{RawJSON: raw}

	status.Description = flattenChat(gjson.Get(raw, "description"))
	status.VersionName = gjson.Get(raw, "version.name").String()
	status.Protocol = gjson.Get(raw, "version.protocol").Int()
	status.OnlinePlayers = gjson.Get(raw, "players.online").Int()
	status.MaxPlayers = gjson.Get(raw, "players.max").Int()

	gjson.Get(raw, "players.sample").ForEach(func(_, player gjson.Result) bool {
		if name := player.Get("name").String(); name != "" {
			status.Sample = append(status.Sample, name)
		}
		return true
	})

	return status
}

// flattenChat concatenates a chat component's text with its extra
// components. Nested formatting objects are flattened to their text;
// their JSON-level styling is ignored since the servers this targets use
// inline legacy codes.
func flattenChat(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.String()
	}
	out := v.Get("text").String()
	v.Get("extra").ForEach(func(_, part gjson.Result) bool {
		out += flattenChat(part)
		return true
	})
	return out
}
