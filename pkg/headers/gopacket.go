package headers

import (
	"errors"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"firestige.xyz/hdrkit/pkg/header"
)

// ErrUnsupportedLayer is returned for gopacket layers without a bundled header.
var ErrUnsupportedLayer = errors.New("hdrkit: unsupported layer")

// FromLayer copies the fixed part of a decoded gopacket layer into the
// matching bundled header. IPv4 and TCP options are not part of the fixed
// header and are dropped.
func FromLayer(l gopacket.Layer) (header.Header, error) {
	b := l.LayerContents()
	switch l.LayerType() {
	case layers.LayerTypeEthernet:
		return fromPrefix(b, EthernetSize, EthernetFromBytes)
	case layers.LayerTypeDot1Q:
		return fromPrefix(b, VlanSize, VlanFromBytes)
	case layers.LayerTypeIPv4:
		return fromPrefix(b, IPv4Size, IPv4FromBytes)
	case layers.LayerTypeIPv6:
		return fromPrefix(b, IPv6Size, IPv6FromBytes)
	case layers.LayerTypeTCP:
		return fromPrefix(b, TCPSize, TCPFromBytes)
	case layers.LayerTypeUDP:
		return fromPrefix(b, UDPSize, UDPFromBytes)
	case layers.LayerTypeVXLAN:
		return fromPrefix(b, VxlanSize, VxlanFromBytes)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLayer, l.LayerType())
	}
}

func fromPrefix[T header.Header](b []byte, size int, from func([]byte) (T, error)) (header.Header, error) {
	if len(b) < size {
		return nil, fmt.Errorf("%w: layer has %d bytes, header needs %d", header.ErrSizeMismatch, len(b), size)
	}
	h, err := from(b[:size])
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Decode parses an Ethernet frame and returns the header stack, outermost
// first. Layers without a bundled header, such as ARP or the payload, are
// skipped. Tunnelled frames yield both the outer and the inner headers.
func Decode(frame []byte) ([]header.Header, error) {
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.DecodeOptions{NoCopy: true})
	if el := pkt.ErrorLayer(); el != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", el.Error())
	}

	var stack []header.Header
	for _, l := range pkt.Layers() {
		h, err := FromLayer(l)
		if errors.Is(err, ErrUnsupportedLayer) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s layer: %w", l.LayerType(), err)
		}
		stack = append(stack, h)
	}
	return stack, nil
}
